package render

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ppiankov/launchwatch/internal/stats"
)

// StatsTable renders the launches-per-year table followed by the totals
func StatsTable(s stats.Summary) *html.Node {
	body := elem(atom.Tbody, nil)
	for _, y := range s.Years() {
		body.AppendChild(elem(atom.Tr, nil,
			elem(atom.Td, nil, text(strconv.Itoa(y))),
			elem(atom.Td, nil, text(strconv.Itoa(s.PerYear[y]))),
		))
	}

	return div("stats",
		elem(atom.Table, attrs("class", "table table-dark table-sm"),
			elem(atom.Thead, nil, elem(atom.Tr, nil,
				elem(atom.Th, nil, text("Year")),
				elem(atom.Th, nil, text("Launches")),
			)),
			body,
		),
		div("row text-center",
			statTile("total-launches", "Launches", strconv.Itoa(s.Total)),
			statTile("success-rate", "Success rate", s.SuccessRateString()),
			statTile("total-failures", "Failures", strconv.Itoa(s.Failure)),
		),
	)
}

func statTile(id, label, value string) *html.Node {
	return div("col",
		elem(atom.Div, attrs("id", id, "class", "display-6 fw-bold"), text(value)),
		div("text-white-50 small", text(label)),
	)
}
