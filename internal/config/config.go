package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Environment variables read by the greeter. They only affect diagnostics on
// stderr, never the greeting written to stdout.
const (
	// EnvLogLevel sets the minimum level for diagnostics ("debug", "info", "warn", "error")
	EnvLogLevel = "GREETER_LOG_LEVEL"

	// EnvNoColor disables colored diagnostics when set to any non-empty value
	EnvNoColor = "NO_COLOR"
)

// Config represents the greeter configuration
type Config struct {
	// LogLevel is the minimum level of diagnostics written to stderr
	LogLevel slog.Level `json:"logLevel"`

	// NoColor disables ANSI colors in diagnostics
	NoColor bool `json:"noColor"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: slog.LevelWarn,
		NoColor:  false,
	}
}

// FromEnv returns the default configuration overlaid with values from getenv.
func FromEnv(getenv func(key string) string) (*Config, error) {
	cfg := DefaultConfig()

	if raw := strings.TrimSpace(getenv(EnvLogLevel)); raw != "" {
		level, err := ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if getenv(EnvNoColor) != "" {
		cfg.NoColor = true
	}

	return cfg, nil
}

// ParseLevel converts a level name into a slog.Level. Matching is case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
