package render

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ppiankov/launchwatch/internal/model"
)

// vehicleDescriptions replace the API text for the vehicles shown most often
var vehicleDescriptions = map[string]string{
	"Falcon 1":     "Falcon 1 was the first privately developed liquid-fuel rocket to reach orbit. It paved the way for everything SpaceX flies today.",
	"Falcon 9":     "Falcon 9 is a reusable two-stage rocket that carries people and payloads reliably. It is the first orbital-class rocket able to land its booster.",
	"Falcon Heavy": "Falcon Heavy is one of the most powerful operational rockets in the world. Three Falcon 9 cores lift up to 64 tonnes to orbit.",
	"Starship":     "Starship is a fully reusable transport system designed to carry crew and cargo to Earth orbit, the Moon, Mars and beyond.",
}

var costPrinter = message.NewPrinter(language.AmericanEnglish)

// VehicleDescription returns the display text for a vehicle
func VehicleDescription(v model.Vehicle) string {
	if d, ok := vehicleDescriptions[v.Name]; ok {
		return d
	}
	return v.Description
}

// FormatCost renders a per-launch cost as "$50,000,000", or "TBD" when unknown
func FormatCost(usd int64) string {
	if usd <= 0 {
		return "TBD"
	}
	return costPrinter.Sprintf("$%d", usd)
}

// FormatHeight renders a height in meters, "70 m" or "41.2 m"
func FormatHeight(meters float64) string {
	return strconv.FormatFloat(meters, 'f', -1, 64) + " m"
}

// VehicleCard builds the card for one vehicle
func VehicleCard(v model.Vehicle) *html.Node {
	image := FallbackImage
	if len(v.FlickrImages) > 0 && v.FlickrImages[0] != "" {
		image = v.FlickrImages[0]
	}
	badgeClass, badgeText := "bg-secondary", "Inactive"
	if v.Active {
		badgeClass, badgeText = "bg-success", "Active"
	}

	links := div("d-flex gap-2 mt-auto")
	if v.Wikipedia != "" {
		links.AppendChild(externalLink(v.Wikipedia, "btn btn-sm btn-light flex-fill", text("Wikipedia")))
	}
	if v.Video != "" {
		links.AppendChild(externalLink(v.Video, "btn btn-sm btn-outline-danger flex-fill", icon("youtube"), text("Test flight")))
	}

	body := div("card-body d-flex flex-column h-100",
		div("d-flex justify-content-between align-items-start mb-2",
			elem(atom.H3, attrs("class", "card-title fw-bold m-0"), text(v.Name)),
			span("badge "+badgeClass+" rounded-pill", text(badgeText)),
		),
		elem(atom.P, attrs("class", "card-text small text-white-50 mt-2 flex-grow-1"), text(VehicleDescription(v))),
		div("bg-dark bg-opacity-50 p-2 rounded small mb-3 border border-secondary border-opacity-25",
			elem(atom.Div, nil, text("Height: "), elem(atom.Strong, nil, text(FormatHeight(v.Height.Meters)))),
			div("text-highlight", text("Cost: "), elem(atom.Strong, nil, text(FormatCost(v.CostPerLaunch)))),
		),
		links,
	)

	return div("col-lg-6",
		div("card glass-card text-white overflow-hidden h-100 border-0 shadow-sm",
			div("row g-0 h-100",
				div("col-md-5", elem(atom.Img, attrs("src", image, "class", "img-fluid h-100 w-100", "alt", v.Name))),
				div("col-md-7", body),
			),
		),
	)
}

// VehicleList renders every vehicle card in a row
func VehicleList(vehicles []model.Vehicle) *html.Node {
	row := div("row g-4")
	for _, v := range vehicles {
		row.AppendChild(VehicleCard(v))
	}
	return row
}
