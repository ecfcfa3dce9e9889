package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays PROJECTHUB_* environment variables onto config. Unset
// variables leave the current value untouched. Malformed values panic, the
// same way broken JSON or flags do.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
