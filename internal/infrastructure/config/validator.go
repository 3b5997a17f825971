package config

import (
	"errors"
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks configuration consistency before the process starts.
// Provider credentials are deliberately not checked here: the provider
// adapter validates them at construction time so a misconfiguration fails
// at the right layer.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("server shutdown timeout must be positive")
	}

	if cfg.Mongo.URI == "" {
		return errors.New("mongo URI is required")
	}
	if cfg.Mongo.Database == "" {
		return errors.New("mongo database name is required")
	}

	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("unknown log level %q", cfg.Logging.Level)
	}

	if cfg.Refresh.Enabled {
		if cfg.Refresh.Interval <= 0 {
			return errors.New("refresh interval must be positive when refresh is enabled")
		}
		if cfg.Refresh.Concurrency <= 0 {
			return errors.New("refresh concurrency must be positive when refresh is enabled")
		}
	}

	return nil
}
