package pipeline

import (
	"sort"
	"strings"

	"github.com/ppiankov/launchwatch/internal/model"
)

// Any is the year / vehicle value that disables that predicate
const Any = "all"

// Criteria holds the current filter inputs for one mode
type Criteria struct {
	Term    string `json:"term"`    // Case-insensitive substring of the launch name
	Year    string `json:"year"`    // Exact scheduled year, "" or "all" for any
	Vehicle string `json:"vehicle"` // Substring of configuration name or launch name, "" or "all" for any
}

// AnyCriteria matches every record
func AnyCriteria() Criteria {
	return Criteria{Year: Any, Vehicle: Any}
}

func isAny(v string) bool {
	return v == "" || v == Any
}

// Matches reports whether l satisfies all three predicates of c
func Matches(l model.Launch, c Criteria) bool {
	if c.Term != "" && !strings.Contains(strings.ToLower(l.Name), strings.ToLower(c.Term)) {
		return false
	}
	if !isAny(c.Year) && l.Year() != c.Year {
		return false
	}
	if !isAny(c.Vehicle) {
		// Absent configuration is "", so only the name fallback can match
		if !strings.Contains(l.VehicleName(), c.Vehicle) && !strings.Contains(l.Name, c.Vehicle) {
			return false
		}
	}
	return true
}

// Apply returns the records matching c, preserving order. It never mutates
// records and returns an empty (non-nil) slice when nothing matches.
func Apply(records []model.Launch, c Criteria) []model.Launch {
	out := make([]model.Launch, 0, len(records))
	for _, l := range records {
		if Matches(l, c) {
			out = append(out, l)
		}
	}
	return out
}

// Years lists the distinct scheduled years in records, newest first.
// Used to populate year selectors.
func Years(records []model.Launch) []string {
	seen := make(map[string]bool)
	var years []string
	for _, l := range records {
		y := l.Year()
		if y == "" || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	// Four-digit years sort lexically
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}
