package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ppiankov/launchwatch/internal/model"
)

// PageSize is the fixed number of launches requested per page
const PageSize = 30

// LaunchClient reads paginated launch collections from the launch API
type LaunchClient struct {
	fetcher *Fetcher
	baseURL string
	search  string
	logger  zerolog.Logger
}

// NewLaunchClient creates a client for baseURL (e.g. https://ll.thespacedevs.com/2.2.0).
// search is sent as ?search= to restrict results to one organisation.
func NewLaunchClient(f *Fetcher, baseURL, search string, logger zerolog.Logger) *LaunchClient {
	return &LaunchClient{
		fetcher: f,
		baseURL: strings.TrimRight(baseURL, "/"),
		search:  search,
		logger:  logger.With().Str("component", "launches").Logger(),
	}
}

// PageURL builds {base}/launch/{upcoming|previous}/?search=..&limit=..&offset=..
func (c *LaunchClient) PageURL(mode model.Mode, offset, limit int) string {
	q := url.Values{}
	if c.search != "" {
		q.Set("search", c.search)
	}
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint(offset))
	return fmt.Sprintf("%s/launch/%s/?%s", c.baseURL, mode.Endpoint(), q.Encode())
}

// FetchPage retrieves one page of launches. A body that is valid JSON but
// lacks a results array yields an empty page rather than an error.
func (c *LaunchClient) FetchPage(ctx context.Context, mode model.Mode, offset, limit int) ([]model.Launch, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("invalid mode %q", mode)
	}
	if limit <= 0 {
		limit = PageSize
	}

	pageURL := c.PageURL(mode, offset, limit)
	body, err := c.fetcher.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	launches, err := decodeLaunchPage(body)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", pageURL).Msg("unexpected response shape, treating page as empty")
		return []model.Launch{}, nil
	}
	return launches, nil
}

// decodeLaunchPage decodes a body Get already checked as JSON. The error is
// for JSON of the wrong shape.
func decodeLaunchPage(body []byte) ([]model.Launch, error) {
	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	raw := bytes.TrimSpace(envelope.Results)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []model.Launch{}, nil
	}

	var launches []model.Launch
	if err := json.Unmarshal(raw, &launches); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	if launches == nil {
		launches = []model.Launch{}
	}
	return launches, nil
}
