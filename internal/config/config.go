package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-market/internal/config/configs"
)

// Config aggregates all configuration sections. Each nested struct is
// parsed from environment variables carrying its envPrefix.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP     `envPrefix:"HTTP_"`
	Log  configs.Logger   `envPrefix:"LOG_"`
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Auth configures validation of session tokens issued by the identity
	// provider.
	Auth configs.Auth `envPrefix:"AUTH_"`

	Redis     configs.Redis     `envPrefix:"REDIS_"`
	RateLimit configs.RateLimit `envPrefix:"RATE_LIMIT_"`
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
