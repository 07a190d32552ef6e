package model

import (
	"strconv"
	"time"
)

// Launch represents a single launch record as returned by the launch API
type Launch struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	NET         string      `json:"net"`                    // No-earlier-than timestamp (RFC 3339)
	Image       string      `json:"image,omitempty"`        // Mission or vehicle image URL
	Rocket      *Rocket     `json:"rocket,omitempty"`       // Vehicle configuration
	Mission     *Mission    `json:"mission,omitempty"`      // Mission details incl. target orbit
	Status      *Status     `json:"status,omitempty"`       // Outcome status
	Pad         *Pad        `json:"pad,omitempty"`          // Launch pad and location
	VidURLs     []VideoLink `json:"vidURLs,omitempty"`      // Stream / replay links
	WebcastLive bool        `json:"webcast_live,omitempty"` // Webcast currently live
}

// Rocket wraps the vehicle configuration of a launch
type Rocket struct {
	Configuration *Configuration `json:"configuration,omitempty"`
}

// Configuration identifies the launch vehicle (e.g., "Falcon 9 Block 5")
type Configuration struct {
	Name string `json:"name"`
}

// Mission describes the payload mission
type Mission struct {
	Name  string `json:"name,omitempty"`
	Orbit *Orbit `json:"orbit,omitempty"`
}

// Orbit is the mission's target orbit
type Orbit struct {
	Name   string `json:"name,omitempty"`
	Abbrev string `json:"abbrev,omitempty"` // LEO, GTO, SSO, ...
}

// Status is the launch outcome / scheduling status
type Status struct {
	Name   string `json:"name,omitempty"`
	Abbrev string `json:"abbrev,omitempty"` // Success, Failure, Go, TBD, ...
}

// Pad is the launch pad
type Pad struct {
	Name     string    `json:"name,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// Location is the launch site
type Location struct {
	Name string `json:"name,omitempty"`
}

// VideoLink is a single entry of vidURLs
type VideoLink struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// StatusSuccess is the status abbreviation reported for successful launches
const StatusSuccess = "Success"

// Scheduled parses the NET timestamp. The second return value is false when
// the field is missing or not a valid RFC 3339 time.
func (l Launch) Scheduled() (time.Time, bool) {
	if l.NET == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, l.NET)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// Year returns the scheduled year as a string, or "" if NET is unparseable
func (l Launch) Year() string {
	t, ok := l.Scheduled()
	if !ok {
		return ""
	}
	return strconv.Itoa(t.Year())
}

// VehicleName returns the configuration name, or "" when absent
func (l Launch) VehicleName() string {
	if l.Rocket == nil || l.Rocket.Configuration == nil {
		return ""
	}
	return l.Rocket.Configuration.Name
}

// OrbitAbbrev returns the target orbit abbreviation, or "" when absent
func (l Launch) OrbitAbbrev() string {
	if l.Mission == nil || l.Mission.Orbit == nil {
		return ""
	}
	return l.Mission.Orbit.Abbrev
}

// OrbitName returns the API-provided orbit name, or "" when absent
func (l Launch) OrbitName() string {
	if l.Mission == nil || l.Mission.Orbit == nil {
		return ""
	}
	return l.Mission.Orbit.Name
}

// LocationName returns the pad location name, or "" when absent
func (l Launch) LocationName() string {
	if l.Pad == nil || l.Pad.Location == nil {
		return ""
	}
	return l.Pad.Location.Name
}

// Succeeded reports whether the launch status is "Success"
func (l Launch) Succeeded() bool {
	return l.Status != nil && l.Status.Abbrev == StatusSuccess
}

// VideoURL returns the first stream link, or "" when none is listed
func (l Launch) VideoURL() string {
	for _, v := range l.VidURLs {
		if v.URL != "" {
			return v.URL
		}
	}
	return ""
}
