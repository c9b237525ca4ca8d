// Package logging builds the slog logger used by the giongo commands.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Config selects the handler and the minimum level.
type Config struct {
	Level  string `yaml:"level"  env:"GIONGO_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"GIONGO_LOG_FORMAT" env-default:"text"`
}

// NewLogger creates a *slog.Logger writing to w and sets it as the default
// logger via slog.SetDefault.
//
// Format "json" produces one JSON object per line; anything else produces
// slog's text format. Level is one of debug, info, warn, error
// (case-insensitive) and defaults to info.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Discard returns a logger that drops everything. Tests use it.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
