package sightline

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/sightline/morton"
)

// Logger wraps slog.Logger with sightline-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOrigin adds an origin field to the logger.
func (l *Logger) WithOrigin(p morton.Point) *Logger {
	return &Logger{
		Logger: l.Logger.With("origin", p.String()),
	}
}

// LogPlace logs a place (insert or move) operation.
func (l *Logger) LogPlace(ctx context.Context, id any, pos morton.Point, err error) {
	if err != nil {
		l.ErrorContext(ctx, "place failed",
			"id", id,
			"pos", pos.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "place completed",
			"id", id,
			"pos", pos.String(),
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(ctx context.Context, id any) {
	l.DebugContext(ctx, "remove completed",
		"id", id,
	)
}

// LogSync logs an index synchronization.
func (l *Logger) LogSync(ctx context.Context, applied int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sync failed",
			"applied", applied,
			"error", err,
		)
	} else if applied > 0 {
		l.DebugContext(ctx, "sync completed",
			"applied", applied,
		)
	}
}

// LogQuery logs a spatial query.
func (l *Logger) LogQuery(ctx context.Context, kind string, results int) {
	l.DebugContext(ctx, "query completed",
		"kind", kind,
		"results", results,
	)
}

// LogField logs a field-of-view computation.
func (l *Logger) LogField(ctx context.Context, origin morton.Point, cells int, err error) {
	if err != nil {
		l.WarnContext(ctx, "field of view aborted",
			"origin", origin.String(),
			"cells", cells,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "field of view completed",
			"origin", origin.String(),
			"cells", cells,
		)
	}
}
