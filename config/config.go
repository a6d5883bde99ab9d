package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Port      int    `env:"THINGLIST_PORT" envDefault:"9000"`
	JWTSecret string `env:"THINGLIST_JWT_SECRET" envDefault:"secret"`
	Locale    string `env:"THINGLIST_LOCALE" envDefault:"en-US"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
