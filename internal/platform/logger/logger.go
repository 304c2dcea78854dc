// Package logger builds the process-wide slog logger from LogConfig.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/p-n-ai/pai-curriculum/internal/platform/config"
)

// New returns a logger writing to w. Unknown levels fall back to info; config
// validation rejects them before this is reached in the server.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(w io.Writer, cfg config.LogConfig) *slog.Logger {
	l := New(w, cfg)
	slog.SetDefault(l)
	return l
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
