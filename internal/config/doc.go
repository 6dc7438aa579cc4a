// Package config loads runtime configuration for the shopadmin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   origin (scheme://host:port) of the backend REST API
//	-t int      request timeout (seconds)
//	-s string   path of the persisted session file
//
// # Environment
//
//	SHOPADMIN_API_URL           backend origin, e.g. https://shop.example.com
//	SHOPADMIN_REQUEST_TIMEOUT   Go duration string, e.g. "30s"
//	SHOPADMIN_SESSION_FILE      session record path
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_origin": "http://localhost:8000",
//	  "request_timeout": "15s",
//	  "session_file": "session.json"
//	}
//
// Primary API
//
//   - type Config                     — holds APIOrigin, RequestTimeout, SessionFile
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
