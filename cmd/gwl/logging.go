package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/1broseidon/gwl/internal/config"
)

// newLogger builds the process logger. Format "auto" writes text to a
// terminal and JSON otherwise.
func newLogger(cfg config.LoggingConfig, out *os.File) *slog.Logger {
	format := cfg.Format
	if format == "auto" || format == "" {
		format = "json"
		if term.IsTerminal(int(out.Fd())) {
			format = "text"
		}
	}
	return newLoggerTo(out, format, parseLevel(cfg.Level))
}

func newLoggerTo(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
