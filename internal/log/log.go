package log

import (
	"context"
	"os"

	"go.uber.org/zap"
)

type ctxkey string

const (
	loggerContextKey ctxkey = "logger"
)

// createGlobalLogger logs to stderr so command output on stdout stays clean.
// NOTEPICK_DEBUG=1 enables debug level.
func createGlobalLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if os.Getenv("NOTEPICK_DEBUG") == "" {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.DisableStacktrace = true
	}
	return cfg.Build(zap.AddCallerSkip(1))
}

// DefaultGlobals replaces global zap logger with custom default configuration.
func DefaultGlobals() func() {
	return zap.ReplaceGlobals(zap.Must(createGlobalLogger()))
}

// FromContext returns logger from context if set. Otherwise returns global logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.L()
	}
	if logger, ok := ctx.Value(loggerContextKey).(*zap.Logger); ok {
		return logger
	}
	return zap.L()
}

// Into returns a context with a named sub-logger.
func Into(ctx context.Context, name string) context.Context {
	logger := FromContext(ctx).Named(name)
	return context.WithValue(ctx, loggerContextKey, logger)
}

// With appends fields to logger in context.
func With(ctx context.Context, args ...zap.Field) context.Context {
	var logger *zap.Logger = FromContext(ctx).With(args...)
	return context.WithValue(ctx, loggerContextKey, logger)
}

func Debug(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Error(msg, args...)
}

func Fatal(ctx context.Context, msg string, args ...zap.Field) {
	FromContext(ctx).Fatal(msg, args...)
}
