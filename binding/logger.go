package binding

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with binding-specific context.
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

// NewJSONLogger returns a Logger writing JSON records to w at or above
// level. A nil w means stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger returns a Logger writing key=value records to w at or above
// level. A nil w means stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithProfile adds a profile field to the logger.
func (l *Logger) WithProfile(p Profile) *Logger {
	return &Logger{
		Logger: l.Logger.With("profile", p.String()),
	}
}

// LogCall logs a completed operation call.
func (l *Logger) LogCall(ctx context.Context, op string, args int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "call failed",
			"op", op,
			"args", args,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "call completed",
			"op", op,
			"args", args,
		)
	}
}

// LogRegistry logs the creation of a registry.
func (l *Logger) LogRegistry(ctx context.Context, operations, operators int) {
	l.DebugContext(ctx, "registry created",
		"operations", operations,
		"operators", operators,
	)
}
