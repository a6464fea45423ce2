package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	DefaultAddr        = "0.0.0.0:7777"
	DefaultMaxSessions = 1000
)

type Config struct {
	// Addr is the listen address of the server
	Addr string `json:"addr"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `json:"log_level"`
	// Seed seeds every session's dealer. Zero means seed from the clock.
	Seed int64 `json:"seed"`
	// MaxSessions caps the sessions kept in the event store, oldest dropped first.
	// Zero or less keeps every session.
	MaxSessions int `json:"max_sessions"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Addr:        DefaultAddr,
		LogLevel:    "info",
		MaxSessions: DefaultMaxSessions,
	}
}

// Load reads a JSON config file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	return cfg, nil
}
