// Package logging wraps log/slog with the field names used across membase.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with membase-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// OrNoop returns l, or a NoopLogger when l is nil.
func OrNoop(l *Logger) *Logger {
	if l == nil {
		return NoopLogger()
	}
	return l
}

// WithArena tags every record with an arena name.
func (l *Logger) WithArena(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("arena", name),
	}
}

// LogArenaCreated logs the creation of an arena.
func (l *Logger) LogArenaCreated(ctx context.Context, capacity int, backing string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "arena creation failed",
			"capacity", capacity,
			"backing", backing,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "arena created",
		"capacity", capacity,
		"backing", backing,
	)
}

// LogUsage logs an arena's usage at a phase boundary.
func (l *Logger) LogUsage(ctx context.Context, event string, used, capacity int, percent float32) {
	l.DebugContext(ctx, event,
		"used", used,
		"capacity", capacity,
		"percent", percent,
	)
}

// LogLoad logs a file load into an arena.
func (l *Logger) LogLoad(ctx context.Context, path string, bytesRead int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "file load failed",
			"path", path,
			"bytes_read", bytesRead,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "file loaded",
		"path", path,
		"bytes_read", bytesRead,
	)
}
