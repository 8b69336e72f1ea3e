package config

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/buttonmen-rules/internal/dice"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game/combat/attack"
	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the attack engine tools
type Config struct {
	Search SearchConfig
	Roller RollerConfig
	Redis  RedisConfig

	// LogEvents subscribes the log listener to every resolution event
	LogEvents bool `env:"LOG_EVENTS" envDefault:"false"`
}

// SearchConfig bounds the attack combination search
type SearchConfig struct {
	MaxDice             int `env:"SEARCH_MAX_DICE" envDefault:"16"`
	BruteForceThreshold int `env:"SEARCH_BRUTE_FORCE" envDefault:"6"`
}

// RollerConfig selects the dice roller. Without a server seed rolls are random.
type RollerConfig struct {
	ServerSeed string `env:"ROLLER_SERVER_SEED"`
	ClientSeed string `env:"ROLLER_CLIENT_SEED" envDefault:"buttonmen"`
	Nonce      uint64 `env:"ROLLER_NONCE" envDefault:"0"`
}

// RedisConfig selects where the action log is kept. Without a URL it stays in memory.
type RedisConfig struct {
	URL    string        `env:"REDIS_URL"`
	LogTTL time.Duration `env:"ACTION_LOG_TTL" envDefault:"24h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate ranges
	if cfg.Search.MaxDice < 1 {
		return nil, fmt.Errorf("SEARCH_MAX_DICE must be positive, got %d", cfg.Search.MaxDice)
	}
	if cfg.Search.BruteForceThreshold < 0 {
		return nil, fmt.Errorf("SEARCH_BRUTE_FORCE must not be negative, got %d", cfg.Search.BruteForceThreshold)
	}
	if cfg.Redis.LogTTL < 0 {
		return nil, fmt.Errorf("ACTION_LOG_TTL must not be negative, got %s", cfg.Redis.LogTTL)
	}

	return cfg, nil
}

// Limits returns the search limits for the resolver
func (c *Config) Limits() attack.SearchLimits {
	return attack.SearchLimits{
		MaxDice:             c.Search.MaxDice,
		BruteForceThreshold: c.Search.BruteForceThreshold,
	}
}

// NewRoller returns a seeded roller when a server seed is configured
func (c *Config) NewRoller() dice.Roller {
	if c.Roller.ServerSeed == "" {
		return dice.NewRandomRoller()
	}
	return dice.NewSeededRoller(c.Roller.ServerSeed, c.Roller.ClientSeed, c.Roller.Nonce)
}
