package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds library configuration for the provider surface.
type Config struct {
	Series  SeriesConfig
	Logging LogConfig
}

// SeriesConfig controls series evaluation defaults.
type SeriesConfig struct {
	// DefaultExpansion is used when a caller omits expansion_size. It must
	// keep every derived factorial argument inside uint64, so the ceiling
	// is 9 (sine evaluates up to (2n+1)!).
	DefaultExpansion uint `envconfig:"FREEMATH_EXPANSION" default:"8"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"FREEMATH_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"FREEMATH_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Series: SeriesConfig{
			DefaultExpansion: 8,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
