package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ppiankov/launchwatch/internal/cache"
	"github.com/ppiankov/launchwatch/internal/model"
)

// Fetcher performs single-attempt JSON GET requests. Responses may be served
// from an in-memory cache and outgoing requests are paced per host.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	limiter    *Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
	logger     zerolog.Logger
}

// Option customizes a Fetcher
type Option func(*Fetcher)

// WithLimiter paces requests through l
func WithLimiter(l *Limiter) Option {
	return func(f *Fetcher) { f.limiter = l }
}

// WithCache serves repeated URLs from c for ttl
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(f *Fetcher) {
		f.cache = c
		f.cacheTTL = ttl
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Fetcher) { f.logger = logger.With().Str("component", "fetcher").Logger() }
}

// NewFetcher creates a Fetcher from the HTTP section of the config
func NewFetcher(cfg model.HTTPConfig, opts ...Option) (*Fetcher, error) {
	client, err := newHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("http client: %w", err)
	}

	maxBytes := cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = model.DefaultConfig().HTTP.MaxBodyBytes
	}

	f := &Fetcher{
		httpClient: client,
		userAgent:  cfg.UserAgent,
		maxBytes:   maxBytes,
		cache:      cache.Nop{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// NewFetcherFromConfig wires limiter and cache from the full config
func NewFetcherFromConfig(cfg *model.Config, logger zerolog.Logger) (*Fetcher, error) {
	limiter := NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
	for host, hr := range cfg.RateLimiting.Hosts {
		limiter.SetHostRate(host, hr.RequestsPerSecond, hr.BurstSize)
	}
	opts := []Option{
		WithLogger(logger),
		WithLimiter(limiter),
	}
	if cfg.Cache.Enabled {
		opts = append(opts, WithCache(cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval), cfg.Cache.TTL))
	}
	return NewFetcher(cfg.HTTP, opts...)
}

type refreshKey struct{}

// Refresh marks ctx so Get skips cached bodies and always asks the API.
// The fresh body still replaces the cached one.
func Refresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

func isRefresh(ctx context.Context) bool {
	v, _ := ctx.Value(refreshKey{}).(bool)
	return v
}

// Get retrieves the body at rawURL. It issues at most one request and never
// retries. 429 yields a RateLimited error, any other non-2xx a FetchFailed one.
// A body that is not JSON or exceeds the size limit is a MalformedResponse
// error. Only bodies that pass those checks are cached.
func (f *Fetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.Key(rawURL)
	if !isRefresh(ctx) {
		if body, ok := f.cache.Get(key); ok {
			f.logger.Debug().Str("url", rawURL).Msg("cache hit")
			return body, nil
		}
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, rawURL); err != nil {
			return nil, fetchFailed(rawURL, 0, fmt.Errorf("rate limiter: %w", err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fetchFailed(rawURL, 0, fmt.Errorf("create request: %w", err))
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Debug().Err(err).Str("url", rawURL).Msg("request failed")
		return nil, fetchFailed(rawURL, 0, fmt.Errorf("fetch: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	f.logger.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("response")

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rateLimited(rawURL)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fetchFailed(rawURL, resp.StatusCode, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	// One byte past the limit tells a truncated body from one that fits exactly
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fetchFailed(rawURL, resp.StatusCode, fmt.Errorf("read body: %w", err))
	}
	if int64(len(body)) > f.maxBytes {
		return nil, malformed(rawURL, fmt.Errorf("body exceeds %d bytes", f.maxBytes))
	}
	if !json.Valid(body) {
		return nil, malformed(rawURL, fmt.Errorf("body is not valid JSON"))
	}

	if err := f.cache.Set(key, body, f.cacheTTL); err != nil {
		f.logger.Warn().Err(err).Str("url", rawURL).Msg("cache store failed")
	}
	return body, nil
}
