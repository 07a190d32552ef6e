package model

import (
	"fmt"
	"strings"
)

// Mode selects which launch collection an operation targets
type Mode string

const (
	ModeUpcoming Mode = "upcoming"
	ModePast     Mode = "past"
)

// Modes lists every mode in display order
var Modes = []Mode{ModeUpcoming, ModePast}

// Endpoint returns the launch API path segment for the mode
func (m Mode) Endpoint() string {
	if m == ModePast {
		return "previous"
	}
	return "upcoming"
}

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeUpcoming || m == ModePast
}

// ParseMode accepts "upcoming", "past" and the API spelling "previous"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upcoming", "":
		return ModeUpcoming, nil
	case "past", "previous":
		return ModePast, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want upcoming or past)", s)
	}
}
