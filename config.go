package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment (and .env via godotenv) at startup.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	GinMode        string        `env:"GIN_MODE" envDefault:"debug"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	PageSize       int           `env:"CATALOG_PAGE_SIZE" envDefault:"6"`
	ContactDelay   time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"1500ms"`
	MetricsEnabled bool          `env:"METRICS_ENABLED" envDefault:"true"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PageSize <= 0 {
		return Config{}, fmt.Errorf("CATALOG_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.ContactDelay < 0 {
		return Config{}, fmt.Errorf("CONTACT_SUBMIT_DELAY must not be negative, got %s", cfg.ContactDelay)
	}
	return cfg, nil
}

func (c Config) logLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
