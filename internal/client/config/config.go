package config

import "time"

// DefaultAPIBaseURL is the hosted demo store used when nothing else is
// configured.
const DefaultAPIBaseURL = "https://json-server-vded.onrender.com"

// Config holds runtime settings for the jobtrack CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote record store.
//   - RequestTimeout: per-request HTTP timeout.
//   - StorePath: filename of the local state database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StorePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.RequestTimeout = 15 * time.Second
	c.StorePath = "jobtrack.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
