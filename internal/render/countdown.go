package render

import (
	"fmt"
	"time"
)

// Liftoff is shown once the countdown target has passed
const Liftoff = "LIFTOFF!"

// Countdown formats the time from now until target as "3d 04h 05m 06s"
func Countdown(now, target time.Time) string {
	d := target.Sub(now)
	if d < 0 {
		return Liftoff
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dd %02dh %02dm %02ds", days, hours, minutes, seconds)
}
