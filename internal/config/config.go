package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration.
type Config struct {
	Server  ServerConfig
	Limits  LimitsConfig
	Logging LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8090"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// LimitsConfig holds engine-imposed resource limits.
type LimitsConfig struct {
	// MaxBlobSize is the maximum size in bytes of a blob returned to the
	// engine; reads of larger files fail rather than truncate.
	MaxBlobSize int64 `envconfig:"MAX_BLOB_SIZE" default:"1000000000"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
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
		Server: ServerConfig{
			Port: "8090",
			Host: "0.0.0.0",
		},
		Limits: LimitsConfig{
			MaxBlobSize: 1_000_000_000,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
