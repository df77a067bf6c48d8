package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/kula-app/greeter/internal/config"
	"github.com/kula-app/greeter/internal/greeting"
	"github.com/kula-app/greeter/internal/logging"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, it means the greeting was written.
// If the run function returns an error, it means standard output could not be written.
//
// The greeting written to stdout never depends on args or the environment;
// the environment only tunes diagnostics on stderr.
func run(ctx context.Context, _ []string, getenv func(key string) string, stdout, stderr io.Writer) error {
	// Diagnostics are optional, so a bad setting falls back to the defaults.
	cfg, cfgErr := config.FromEnv(getenv)
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel, cfg.NoColor))
	if cfgErr != nil {
		logger.WarnContext(ctx, "ignoring invalid configuration", "error", cfgErr)
	}
	logger.DebugContext(ctx, "configuration loaded",
		"log_level", cfg.LogLevel,
		"no_color", cfg.NoColor)

	values := greeting.DefaultValues()
	if err := greeting.Write(stdout, values); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}

	logger.DebugContext(ctx, "greeting written",
		"name", values.Name,
		"answer", values.Answer,
		"number", values.Number)
	return nil
}
