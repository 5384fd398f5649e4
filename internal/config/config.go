package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	Port        string `env:"APP_PORT" envDefault:"8080"`
	Env         string `env:"APP_ENV" envDefault:"production"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DBDriver    string `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	Timezone    string `env:"STORE_TIMEZONE" envDefault:"Local"`
}

// Load reads a .env file when one exists and then parses the process environment.
// The returned bool reports whether a .env file was found.
func Load(files ...string) (Config, bool, error) {
	found := true
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, false, fmt.Errorf("load .env: %w", err)
		}
		found = false
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, found, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, found, err
	}
	return cfg, found, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (allowed: postgres, sqlite)", c.DBDriver)
	}
	switch c.Env {
	case "production", "development":
	default:
		return fmt.Errorf("unsupported APP_ENV %q (allowed: production, development)", c.Env)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Development reports whether the service runs with developer defaults.
func (c Config) Development() bool { return c.Env == "development" }

// Location resolves STORE_TIMEZONE.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
