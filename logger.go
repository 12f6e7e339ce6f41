package roaringview

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with directory-specific helpers.
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
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithPartitions adds a partitions field to the logger.
func (l *Logger) WithPartitions(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("partitions", count),
	}
}

// LogLoad logs the outcome of parsing a region.
func (l *Logger) LogLoad(size, partitions int, runs bool, extent int, err error) {
	if err != nil {
		l.Debug("region rejected",
			"size", size,
			"error", err,
		)
		return
	}
	l.Debug("directory loaded",
		"partitions", partitions,
		"runs", runs,
		"extent", extent,
		"trailing", size-extent,
	)
}

// LogWrite logs a serialization passthrough.
func (l *Logger) LogWrite(written int64, err error) {
	if err != nil {
		l.Error("write failed",
			"written", written,
			"error", err,
		)
		return
	}
	l.Debug("write completed",
		"written", written,
	)
}
