// Package logger holds the structured logger shared by the arenakit packages.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// EnvLogAlloc enables debug logging to stderr when set to any non-empty value.
const EnvLogAlloc = "ARENAKIT_LOG_ALLOC"

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() or FromEnv() to enable logging.
var L *slog.Logger = discard()

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Writer  io.Writer  // Destination. Default: os.Stderr
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
	JSON    bool       // Emit JSON records instead of text
}

// Init configures logging. If opts.Enabled is false, all log output is discarded.
func Init(opts Options) {
	if !opts.Enabled {
		L = discard()
		return
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.JSON {
		L = slog.New(slog.NewJSONHandler(w, handlerOpts))
		return
	}
	L = slog.New(slog.NewTextHandler(w, handlerOpts))
}

// FromEnv enables debug logging to stderr when EnvLogAlloc is set and
// reports whether it did.
func FromEnv() bool {
	if os.Getenv(EnvLogAlloc) == "" {
		return false
	}
	Init(Options{Enabled: true, Level: slog.LevelDebug})
	return true
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Enabled reports whether records at level would be emitted.
func Enabled(level slog.Level) bool {
	return L.Enabled(context.Background(), level)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }
