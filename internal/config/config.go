package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the whole service configuration, parsed from the environment.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Addr string `env:"ADDR" envDefault:":8080"`

	// DATABASE_URL is optional: without it the cart snapshot lives in
	// process memory only.
	DatabaseURL string `env:"DATABASE_URL"`

	WordPress WordPress
	R2        R2
}

// WordPress gates the remote catalog source. Both the flag AND the base URL
// must be set for the remote to be consulted at all.
type WordPress struct {
	Enabled  bool          `env:"WP_ENABLED" envDefault:"false"`
	BaseURL  string        `env:"WP_BASE_URL"`
	MenuPath string        `env:"WP_MENU_PATH"`
	CacheTTL time.Duration `env:"WP_CACHE_TTL" envDefault:"5m"`
}

// R2 holds object storage credentials for menu image uploads. All optional;
// uploads are disabled when incomplete.
type R2 struct {
	Endpoint  string `env:"R2_ENDPOINT"`
	AccessKey string `env:"R2_ACCESS_KEY"`
	SecretKey string `env:"R2_SECRET_KEY"`
	Bucket    string `env:"R2_BUCKET_NAME"`
	BaseURL   string `env:"R2_PUBLIC_BASE_URL"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
