// Package logging builds the slog loggers used across the binaries.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// FromLevel returns a text logger on stdout at the given level.
// Unknown levels fall back to info.
func FromLevel(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
