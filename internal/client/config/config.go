package config

import "time"

// Config holds runtime settings for the projecthub CLI.
//
// Fields:
//   - ServerURL: base URL of the projecthub HTTP API.
//   - Token: bearer token to start the session with, if any.
//   - RequestTimeout: upper bound for a single API call.
type Config struct {
	ServerURL      string        `env:"PROJECTHUB_SERVER_URL"`
	Token          string        `env:"PROJECTHUB_TOKEN"`
	RequestTimeout time.Duration `env:"PROJECTHUB_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.Token = ""
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
