// Package logging provides structured, context-aware logging for the whole
// service on top of zap. Request IDs travel in the context and are attached
// to every entry automatically.
package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields holds structured log fields.
type Fields map[string]any

// Options configures the logger built by Setup.
type Options struct {
	Level       string // debug, info, warn, error
	Format      string // json or console
	OutputFile  string // optional file sink, rotated
	Environment string // development or production
}

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

// Setup builds the process-wide logger. Safe to call once at startup.
func Setup(opts Options) error {
	logger, err := newLogger(opts)
	if err != nil {
		return err
	}

	mu.Lock()
	base = logger
	mu.Unlock()
	return nil
}

// L returns the current process-wide logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}

func newLogger(opts Options) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(opts.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	encoding := "json"
	if opts.Environment == "development" || opts.Format == "console" {
		encoding = "console"
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if encoding == "console" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}

	var cores []zapcore.Core

	var consoleEncoder zapcore.Encoder
	if encoding == "console" {
		consoleEncoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(encoderCfg)
	}
	cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), lvl))

	if opts.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.OutputFile), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.OutputFile,
			MaxSize:    10, // MB before rotation
			MaxBackups: 5,
			MaxAge:     7, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), fileWriter, lvl))
	}

	logger := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return logger, nil
}

// Debug logs a debug message with context-carried request ID.
func Debug(ctx context.Context, message string, fields Fields) {
	L().Debug(message, zapFields(ctx, fields)...)
}

// Info logs an info message with context-carried request ID.
func Info(ctx context.Context, message string, fields Fields) {
	L().Info(message, zapFields(ctx, fields)...)
}

// Warn logs a warning with context-carried request ID.
func Warn(ctx context.Context, message string, fields Fields) {
	L().Warn(message, zapFields(ctx, fields)...)
}

// Error logs an error message with context-carried request ID.
func Error(ctx context.Context, message string, fields Fields) {
	L().Error(message, zapFields(ctx, fields)...)
}

// WarnWithError logs a warning attaching err under the "error" key.
func WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	L().Warn(message, append(zapFields(ctx, fields), zap.Error(err))...)
}

// ErrorWithError logs an error attaching err under the "error" key.
func ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	L().Error(message, append(zapFields(ctx, fields), zap.Error(err))...)
}

func zapFields(ctx context.Context, fields Fields) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+1)
	if id := RequestID(ctx); id != "" {
		out = append(out, zap.String("request_id", id))
	}
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
