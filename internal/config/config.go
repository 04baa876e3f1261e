// Package config loads runtime settings from the environment. Command-line
// flags use these values as their defaults.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the grinder commands.
type Config struct {
	DecksFile    string `env:"GRINDER_DECKS" envDefault:"decks.yaml"`
	Deck         int    `env:"GRINDER_DECK" envDefault:"1"`
	Seed         int64  `env:"GRINDER_SEED"` // 0 = random
	NoShuffle    bool   `env:"GRINDER_NO_SHUFFLE"`
	StopAtPayoff bool   `env:"GRINDER_STOP_AT_PAYOFF"`
	Port         string `env:"GRINDER_PORT" envDefault:"9000"`
	WebPort      int    `env:"GRINDER_WEB_PORT" envDefault:"8080"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns a Config populated from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
