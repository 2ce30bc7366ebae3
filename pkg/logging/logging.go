// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup(logging.Options{Level: cfg.LogLevel})
//
// Logs go to stderr by default so command output on stdout stays clean.
// Levels: debug, info, warn, error (default: info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options configures the default logger.
type Options struct {
	// Level is one of debug, info, warn, error.
	Level string

	// Writer receives log lines. Defaults to os.Stderr.
	Writer io.Writer

	// NoColor disables ANSI colors, e.g. when stderr is redirected to a file.
	NoColor bool
}

// Setup installs a tint handler as the slog default and returns the logger.
func Setup(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(opts.Level),
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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
