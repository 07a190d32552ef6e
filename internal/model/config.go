package model

import "time"

// Config holds the complete launchwatch configuration
type Config struct {
	API          APIConfig       `yaml:"api" mapstructure:"api"`
	HTTP         HTTPConfig      `yaml:"http" mapstructure:"http"`
	Cache        CacheConfig     `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig    `yaml:"output" mapstructure:"output"`
}

// APIConfig configures the remote data sources
type APIConfig struct {
	LaunchBaseURL  string `yaml:"launch_base_url" mapstructure:"launch_base_url"`   // Launch Library base URL
	VehicleBaseURL string `yaml:"vehicle_base_url" mapstructure:"vehicle_base_url"` // Vehicle API base URL
	Search         string `yaml:"search" mapstructure:"search"`                     // Organisation passed as ?search=
}

// HTTPConfig configures the HTTP client shared by both sources
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"` // 0 leaves the transport default
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
}

// CacheConfig configures the in-memory response cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// RateLimitConfig configures client-side request pacing per host
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`

	// Hosts overrides pacing for single hosts, keyed by lower-case host name
	Hosts map[string]HostRateConfig `yaml:"hosts,omitempty" mapstructure:"hosts"`
}

// HostRateConfig is the pacing for one host
type HostRateConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig configures rendering
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	Pretty  bool `yaml:"pretty" mapstructure:"pretty"` // Indent written HTML
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			LaunchBaseURL:  "https://ll.thespacedevs.com/2.2.0",
			VehicleBaseURL: "https://api.spacexdata.com/v4",
			Search:         "SpaceX",
		},
		HTTP: HTTPConfig{
			UserAgent:    "launchwatch/0.1 (+https://github.com/ppiankov/launchwatch)",
			MaxBodyBytes: 8_000_000,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 1,
			BurstSize:         5,
		},
		Output: OutputConfig{
			Pretty: true,
		},
	}
}
