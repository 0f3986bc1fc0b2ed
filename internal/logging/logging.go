// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// TimeKey replaces slog's "time" key in every record.
const TimeKey = "ts"

// New creates a JSON *slog.Logger on w and installs it as the slog default.
func New(level string, w io.Writer) *slog.Logger {
	logger := slog.New(NewHandler(w, ParseLevel(level), time.UTC))
	slog.SetDefault(logger)
	return logger
}

// NewHandler returns a JSON handler that stamps records under TimeKey in loc
// and tags them with the request id found in the logging context.
func NewHandler(w io.Writer, level slog.Leveler, loc *time.Location) slog.Handler {
	if loc == nil {
		loc = time.UTC
	}
	return contextHandler{slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.String(TimeKey, a.Value.Time().In(loc).Format(time.RFC3339Nano))
			}
			return a
		},
	})}
}

// ParseLevel maps a level name to a slog.Level. Unknown names are info.
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
