package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the zap backend.
type Options struct {
	Level  string
	Format string // "text" or "json"
	// File enables a rotated log file next to stdout when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type implLogger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

// New creates a new Logger writing text lines to stdout.
func New(level string) Logger {
	return NewWithOptions(Options{Level: level, Format: "text"})
}

// NewWithOptions builds a Logger from Options. It never fails: an unusable
// log file is reported on stderr and the logger keeps writing to stdout.
func NewWithOptions(opts Options) Logger {
	level := zap.NewAtomicLevelAt(parseLevel(opts.Level))

	var encoder zapcore.Encoder
	if strings.EqualFold(opts.Format, "json") {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)}
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    defaultInt(opts.MaxSizeMB, 10),
			MaxBackups: defaultInt(opts.MaxBackups, 3),
			MaxAge:     defaultInt(opts.MaxAgeDays, 28),
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(rotator), level))
	}

	return &implLogger{
		sugar: zap.New(zapcore.NewTee(cores...)).Sugar(),
		level: level,
	}
}

// NewFromZap wraps an existing zap logger. Its core decides what gets written.
func NewFromZap(z *zap.Logger) Logger {
	return &implLogger{
		sugar: z.Sugar(),
		level: zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return NewFromZap(zap.NewNop())
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *implLogger) shouldLog(level string) bool {
	return l.level.Enabled(parseLevel(level))
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.sugar.Debugf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.sugar.Infof(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.sugar.Warnf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.sugar.Errorf(msg, args...)
	}
}

func (l *implLogger) With(fields ...interface{}) Logger {
	return &implLogger{sugar: l.sugar.With(fields...), level: l.level}
}

func (l *implLogger) Sync() error {
	return l.sugar.Sync()
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
