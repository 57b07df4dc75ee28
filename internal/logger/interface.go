package logger

import "context"

// Logger is the logging surface shared by every package.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	// With returns a child logger that prefixes every line with the given fields.
	With(fields ...interface{}) Logger
	Sync() error
}
