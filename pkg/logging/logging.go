// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// SetDefaultStructuredLogger installs a slog default logger annotated with the
// component name and version. Output is human-readable text unless jsonOut is
// set; debug forces level below whatever LOG_LEVEL requests.
func SetDefaultStructuredLogger(name, version string, debug, jsonOut bool) {
	level := levelFromEnv()
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler).With(
		slog.String("name", name),
		slog.String("version", version),
	)
	slog.SetDefault(logger)
}

// levelFromEnv reads LOG_LEVEL (debug, info, warn, error), defaulting to info.
func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
