package logging

import (
	"context"
	"io"
	"log/slog"
)

// SlogLogger is the default Logger, backed by a JSON slog handler.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}

// Supported values of the log_format setting.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New returns the Logger for the given format, writing to w.
// Unknown formats fall back to JSON.
func New(format string, w io.Writer) Logger {
	if format == FormatConsole {
		return NewConsoleLogger(w)
	}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(w, nil)))
}
