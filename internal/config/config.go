package config

import "time"

// Config holds runtime settings for the shopadmin CLI.
//
// Fields:
//   - APIOrigin: scheme://host[:port] of the backend REST API. The versioned
//     base path (/api/v1) is appended by the API client, not stored here.
//   - RequestTimeout: per-request timeout for API calls.
//   - SessionFile: path of the persisted session record.
type Config struct {
	APIOrigin      string
	RequestTimeout time.Duration
	SessionFile    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIOrigin = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.SessionFile = "session.json"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
