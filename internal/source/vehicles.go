package source

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ppiankov/launchwatch/internal/model"
)

// VehicleClient reads vehicle specs. The collection is small and not paginated.
type VehicleClient struct {
	fetcher *Fetcher
	baseURL string
	logger  zerolog.Logger
}

// NewVehicleClient creates a client for baseURL (e.g. https://api.spacexdata.com/v4)
func NewVehicleClient(f *Fetcher, baseURL string, logger zerolog.Logger) *VehicleClient {
	return &VehicleClient{
		fetcher: f,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With().Str("component", "vehicles").Logger(),
	}
}

// FetchVehicles returns every vehicle followed by the built-in Starship entry
// when the API does not already list it
func (c *VehicleClient) FetchVehicles(ctx context.Context) ([]model.Vehicle, error) {
	listURL := c.baseURL + "/rockets"
	body, err := c.fetcher.Get(ctx, listURL)
	if err != nil {
		return nil, err
	}

	var vehicles []model.Vehicle
	if err := json.Unmarshal(body, &vehicles); err != nil {
		c.logger.Warn().Err(err).Str("url", listURL).Msg("unexpected response shape, treating list as empty")
		vehicles = nil
	}

	starship := model.Starship()
	for _, v := range vehicles {
		if v.Name == starship.Name {
			return vehicles, nil
		}
	}
	return append(vehicles, starship), nil
}
