// Package log provides the shared slog setup for the application.
package log

import (
	"log/slog"
	"os"
	"strings"
)

// New builds a text-handler logger tagged with a component attribute.
// The level comes from LOG_LEVEL (debug/info/warn/error), defaulting to
// info.
func New(component string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: levelFromEnv(),
	}))
	return logger.With("component", component)
}

// SetDefault installs the logger process-wide.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
