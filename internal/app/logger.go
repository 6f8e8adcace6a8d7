package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logging defaults shared by Config and the command line.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "json"
)

var logLevels = []struct {
	name  string
	level slog.Level
}{
	{"debug", slog.LevelDebug},
	{"info", slog.LevelInfo},
	{"warn", slog.LevelWarn},
	{"error", slog.LevelError},
}

// LogLevels returns the accepted level names, most verbose first.
func LogLevels() []string {
	names := make([]string, 0, len(logLevels))
	for _, l := range logLevels {
		names = append(names, l.name)
	}
	return names
}

// ParseLogLevel maps a level name to its slog.Level. An empty name selects
// DefaultLogLevel.
func ParseLogLevel(name string) (slog.Level, error) {
	if name == "" {
		name = DefaultLogLevel
	}
	for _, l := range logLevels {
		if l.name == name {
			return l.level, nil
		}
	}
	return 0, fmt.Errorf("invalid log-level %q: must be one of %s", name, strings.Join(LogLevels(), ", "))
}

// IsValidLogFormat reports whether name is "text" or "json".
func IsValidLogFormat(name string) bool {
	return name == "text" || name == "json"
}

// newLogger builds an isolated logger writing to w; the global logger is
// left alone. Anything but "text" gets the JSON handler.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
