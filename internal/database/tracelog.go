package database

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/tracelog"
)

// SlogLogger adapts slog to the pgx tracelog.Logger interface
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a tracelog logger writing to l
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: l}
}

func (l *SlogLogger) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	attrs := make([]slog.Attr, 0, len(data))
	for k, v := range data {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.LogAttrs(ctx, slogLevel(level), msg, attrs...)
}

func slogLevel(level tracelog.LogLevel) slog.Level {
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		return slog.LevelDebug
	case tracelog.LogLevelWarn:
		return slog.LevelWarn
	case tracelog.LogLevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}
