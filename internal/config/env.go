package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables understood by the CLI. SHOPADMIN_API_URL is the
// primary knob: it selects which backend the client talks to.
const (
	EnvAPIURL         = "SHOPADMIN_API_URL"
	EnvRequestTimeout = "SHOPADMIN_REQUEST_TIMEOUT"
	EnvSessionFile    = "SHOPADMIN_SESSION_FILE"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; a missing file
// is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		cfg.APIOrigin = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v, ok := os.LookupEnv(EnvSessionFile); ok && v != "" {
		cfg.SessionFile = v
	}
}
