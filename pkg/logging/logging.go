// Package logging configures the process-wide slog default: text output
// for development, JSON for production, level from the environment.
package logging

import (
	"log/slog"
	"os"
	"strings"

	"fogexplore/pkg/config"
)

// Setup installs the default logger. Call once, before anything logs.
func Setup(serviceName string) {
	level := parseLogLevel(config.GetEnv("LOG_LEVEL", "info"))
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if config.GetBoolEnv("ENABLE_PRETTY_LOGS", false) {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
