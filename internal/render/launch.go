package render

import (
	"net/url"
	"strconv"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ppiankov/launchwatch/internal/model"
)

// FormatDate renders the scheduled date as DD.MM.YYYY. A 31 December date is
// what the launch API reports when only the year is known, so it is shown as
// "Planned YYYY". This is a heuristic; the API sends no explicit marker.
func FormatDate(l model.Launch) string {
	t, ok := l.Scheduled()
	if !ok {
		return "TBD"
	}
	if t.Day() == 31 && t.Month() == time.December {
		return "Planned " + strconv.Itoa(t.Year())
	}
	return t.Format("02.01.2006")
}

// MapsLink is a map search URL for a launch site name
func MapsLink(location string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(location)
}

// LaunchCard builds the card for one launch. Past launches carry an outcome badge.
func LaunchCard(l model.Launch, mode model.Mode) *html.Node {
	image := l.Image
	if image == "" {
		image = FallbackImage
	}
	location := l.LocationName()
	if location == "" {
		location = "Unknown"
	}
	orbit := launchOrbit(l.OrbitAbbrev(), l.OrbitName())

	card := div("card glass-card text-white h-100 position-relative border-0 shadow-lg")

	if mode == model.ModePast {
		badgeClass, badgeText := "bg-danger", "Failure"
		if l.Succeeded() {
			badgeClass, badgeText = "bg-success", "Success"
		}
		card.AppendChild(span("badge "+badgeClass+" status-badge rounded-pill", text(badgeText)))
	}

	card.AppendChild(div("img-wrapper p-0",
		elem(atom.Img, attrs("src", image, "class", "card-img-custom w-100", "alt", l.Name)),
	))

	details := div("bg-dark bg-opacity-50 p-3 rounded mb-4 small flex-grow-1",
		div("d-flex align-items-center mb-2", icon("calendar-event"), span("launch-date", text(FormatDate(l)))),
		div("d-flex align-items-center mb-2", icon("geo-alt"),
			externalLink(MapsLink(location), "text-white-50 text-decoration-none text-truncate", text(location)),
		),
		div("d-flex align-items-start", icon("bullseye"),
			elem(atom.Div, nil,
				span("fw-bold d-block orbit-abbrev", text(orbit.Abbrev)),
				span("text-white-50 x-small orbit-name", text(orbit.Name)),
			),
		),
	)

	actions := div("d-flex justify-content-between mt-auto gap-2")
	if video := l.VideoURL(); video != "" {
		actions.AppendChild(externalLink(video, "btn btn-outline-info btn-sm flex-fill me-1", icon("play-circle"), text("Stream")))
	}
	if link := orbit.OrbitLink(); link != "" {
		actions.AppendChild(elem(atom.A, attrs("href", link, "class", "btn btn-outline-warning btn-sm flex-fill"), icon("globe"), text("Orbit")))
	} else {
		actions.AppendChild(elem(atom.A, attrs("href", "#", "class", "btn btn-outline-secondary btn-sm flex-fill disabled", "aria-disabled", "true"), icon("globe"), text("Orbit")))
	}

	card.AppendChild(div("card-body d-flex flex-column",
		elem(atom.H5, attrs("class", "card-title fw-bold mb-3"), text(l.Name)),
		details,
		actions,
	))

	return div("col-md-6 col-lg-4", card)
}

// EmptyState is shown when the filtered view has no records
func EmptyState() *html.Node {
	return div("col-12 text-center text-white-50 py-5", elem(atom.H4, nil, text("No missions found.")))
}

// LoadingIndicator is shown while a fresh load is in flight
func LoadingIndicator() *html.Node {
	return div("text-center py-5 loading",
		div("spinner-border text-info", elem(atom.Span, attrs("class", "visually-hidden"), text("Loading..."))),
	)
}

// ErrorAlert shows a fetch failure message
func ErrorAlert(message string) *html.Node {
	return div("alert alert-warning bg-transparent text-white border-warning", text(message))
}

// LoadMoreButton is shown while further pages may exist
func LoadMoreButton() *html.Node {
	return elem(atom.Button, attrs("id", "loadMoreBtn", "class", "btn btn-outline-light", "type", "button"), text("Load more"))
}

// LaunchList renders the cards for a filtered view, or the empty state
func LaunchList(view []model.Launch, mode model.Mode) *html.Node {
	row := div("row g-4")
	if len(view) == 0 {
		row.AppendChild(EmptyState())
		return row
	}
	for _, l := range view {
		row.AppendChild(LaunchCard(l, mode))
	}
	return row
}

// NextLaunchBanner shows the next mission and the time left until liftoff
func NextLaunchBanner(l model.Launch, now time.Time) *html.Node {
	countdown := "TBD"
	if t, ok := l.Scheduled(); ok {
		countdown = Countdown(now, t)
	}
	return div("countdown-container text-center my-4",
		elem(atom.H5, attrs("id", "next-mission-name"), text("Next mission: "+l.Name)),
		elem(atom.Div, attrs("id", "countdown-timer", "class", "display-6 fw-bold"), text(countdown)),
	)
}
