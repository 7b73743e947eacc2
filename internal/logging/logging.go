// Package logging builds the slog loggers used by the companion CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	FormatJSON = "json"
	FormatText = "text"

	DefaultLevel  = slog.LevelInfo
	DefaultFormat = FormatText
)

// Config holds the logging configuration.
type Config struct {
	Level     slog.Level
	Format    string
	AddSource bool

	// Writer receives log records; nil means os.Stderr.
	Writer io.Writer
}

// ParseLevel converts a level name to slog.Level. "warning" is accepted
// for warn; the empty string yields DefaultLevel.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return DefaultLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}

// NewHandler creates a text or JSON handler for cfg.
func NewHandler(cfg Config) slog.Handler {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:       cfg.Level,
		AddSource:   cfg.AddSource,
		ReplaceAttr: shortTime,
	}
	if strings.EqualFold(cfg.Format, FormatJSON) {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	return slog.New(NewHandler(cfg))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// shortTime renders timestamps as RFC3339.
func shortTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			return slog.String(slog.TimeKey, t.Format(time.RFC3339))
		}
	}

	return a
}
