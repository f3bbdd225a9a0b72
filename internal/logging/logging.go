// Package logging builds the structured logger used by the rascal driver.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds configuration for creating loggers
type Config struct {
	// Log level (debug, info, warn, error)
	Level string

	// Output format: "text" or "json" (default: text)
	Format string

	// Output writer (default: os.Stderr)
	Output io.Writer
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

// New creates a logger from cfg. Unknown levels fall back to warn.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	return slog.New(h)
}

// ParseLevel converts a level name to a slog level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
