package render

import "strings"

// Ring is the visual distance band an orbit is drawn on
type Ring string

const (
	RingNone Ring = ""
	RingLEO  Ring = "leo"
	RingMEO  Ring = "meo"
	RingGTO  Ring = "gto"
)

// OrbitInfo describes a mission orbit code
type OrbitInfo struct {
	Abbrev string
	Name   string
	Ring   Ring
}

var orbitNames = map[string]string{
	"LEO":  "Low Earth Orbit",
	"ISS":  "International Space Station",
	"VLEO": "Very Low Earth Orbit",
	"SSO":  "Sun-Synchronous Orbit",
	"MEO":  "Medium Earth Orbit",
	"PO":   "Polar Orbit",
	"GTO":  "Geostationary Transfer Orbit",
	"GEO":  "Geostationary Orbit",
	"HEO":  "High Earth Orbit",
	"TLI":  "Trans-Lunar Injection",
	"LO":   "Lunar Orbit",
	"BLT":  "Ballistic Lunar Transfer",
	"L1":   "Sun-Earth Lagrange Point 1",
	"L2":   "Sun-Earth Lagrange Point 2",
	"HCO":  "Heliocentric Orbit",
	"Sub":  "Suborbital",
}

var orbitRings = map[string]Ring{
	"LEO": RingLEO, "ISS": RingLEO, "VLEO": RingLEO, "SSO": RingLEO,
	"PO": RingMEO, "MEO": RingMEO,
	"GTO": RingGTO, "GEO": RingGTO, "HEO": RingGTO, "TLI": RingGTO, "LO": RingGTO,
	"BLT": RingGTO, "HCO": RingGTO, "L1": RingGTO, "L2": RingGTO,
}

// LookupOrbit resolves an orbit code, retrying upper-cased so "leo" finds "LEO"
func LookupOrbit(abbrev string) (OrbitInfo, bool) {
	name, ok := orbitNames[abbrev]
	if !ok {
		abbrev = strings.ToUpper(abbrev)
		name, ok = orbitNames[abbrev]
	}
	if !ok {
		return OrbitInfo{Abbrev: abbrev}, false
	}
	return OrbitInfo{Abbrev: abbrev, Name: name, Ring: orbitRings[abbrev]}, true
}

// OrbitCodes lists every known orbit code
func OrbitCodes() []string {
	codes := make([]string, 0, len(orbitNames))
	for c := range orbitNames {
		codes = append(codes, c)
	}
	return codes
}

// launchOrbit returns what a launch card shows for the target orbit
func launchOrbit(abbrev, apiName string) OrbitInfo {
	if abbrev == "" {
		return OrbitInfo{Abbrev: "TBD", Name: "Unknown"}
	}
	info, ok := LookupOrbit(abbrev)
	if ok {
		return info
	}
	if apiName == "" {
		apiName = "Unknown"
	}
	return OrbitInfo{Abbrev: abbrev, Name: apiName}
}

// OrbitLink is the orbit page URL for a launch, "" when the orbit has no ring
func (o OrbitInfo) OrbitLink() string {
	if o.Abbrev == "TBD" || o.Ring == RingNone {
		return ""
	}
	return "orbit.html?highlight=" + string(o.Ring) + "&name=" + o.Abbrev
}
