// cmd/patterns/config.go
package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joeshaw/envdecode"
)

// Config is the environment-driven configuration. Every field has a default,
// so an empty environment is valid.
type Config struct {
	// Pattern pre-selects a demo, same values as -run. ENV: PATTERNS_PATTERN
	Pattern string `env:"PATTERNS_PATTERN"`

	// TranscriptDir, when set, makes -run export the transcript there.
	// ENV: PATTERNS_TRANSCRIPT_DIR
	TranscriptDir string `env:"PATTERNS_TRANSCRIPT_DIR"`

	// LogLevel is one of debug, info, warn, error. ENV: PATTERNS_LOG
	LogLevel string `env:"PATTERNS_LOG,default=warn"`
}

// loadConfig reads the environment into a Config.
//
// envdecode reports "no target fields" when nothing in the environment
// matched; with every field optional that simply means defaults, not a
// failure.
func loadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return cfg, nil
}

// slogLevel maps the configured level name onto slog. Unknown names fall
// back to warn rather than failing startup.
func (c Config) slogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
