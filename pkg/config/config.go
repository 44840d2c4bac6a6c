package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingToken is returned when DISCORD_TOKEN is not present in the environment.
var ErrMissingToken = errors.New("DISCORD_TOKEN environment variable is required")

// Config holds all configuration for the application
type Config struct {
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	IsProduction  bool
	IsDevelopment bool

	// Discord Bot Configuration
	DiscordToken string `env:"DISCORD_TOKEN"`
	ShardCount   int    `env:"SHARD_COUNT" envDefault:"1"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"LOG_DIR"`
}

// Load merges the given dotenv files (".env" when none are given) into the
// process environment and parses the result. A missing file is an error.
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.IsProduction = cfg.Environment == "production"
	cfg.IsDevelopment = !cfg.IsProduction

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return ErrMissingToken
	}
	if c.ShardCount < 1 {
		return fmt.Errorf("SHARD_COUNT must be at least 1, got %d", c.ShardCount)
	}

	return nil
}
