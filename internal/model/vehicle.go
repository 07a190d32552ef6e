package model

// Vehicle represents a rocket as returned by the vehicle API
type Vehicle struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Active        bool     `json:"active"`
	Description   string   `json:"description,omitempty"`
	Height        Distance `json:"height"`
	Mass          Mass     `json:"mass"`
	CostPerLaunch int64    `json:"cost_per_launch,omitempty"` // USD, 0 when unknown
	FlickrImages  []string `json:"flickr_images,omitempty"`
	Wikipedia     string   `json:"wikipedia,omitempty"`
	Video         string   `json:"video,omitempty"` // Not provided by the API; set on built-in entries
}

// Distance holds a length in meters
type Distance struct {
	Meters float64 `json:"meters"`
}

// Mass holds a mass in kilograms
type Mass struct {
	Kg float64 `json:"kg"`
}

// Starship returns the built-in Starship entry. The vehicle API does not list
// Starship, so it is appended to every fetched vehicle list.
func Starship() Vehicle {
	return Vehicle{
		Name:          "Starship",
		Active:        true,
		Description:   "The largest and most powerful launch system ever flown, built for missions to the Moon and Mars.",
		Height:        Distance{Meters: 121},
		Mass:          Mass{Kg: 5_000_000},
		CostPerLaunch: 10_000_000,
		FlickrImages:  []string{"https://live.staticflickr.com/65535/52839933099_89c0379208_b.jpg"},
		Wikipedia:     "https://en.wikipedia.org/wiki/SpaceX_Starship",
		Video:         "https://www.youtube.com/watch?v=ap-BkkrRg-o",
	}
}
