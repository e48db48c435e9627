package log

import (
	"context"
	"os"

	"go.uber.org/zap"
)

type contextKey int

const loggerKey contextKey = iota

var defaultLogger *zap.Logger

func init() {
	var err error
	if os.Getenv("DEBUG") != "" {
		defaultLogger, err = zap.NewDevelopment()
	} else {
		defaultLogger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
}

// Logger returns the logger attached to the context, or the default logger.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return defaultLogger
}

// With returns a context whose logger carries the given key/value field.
func With(ctx context.Context, key string, value interface{}) context.Context {
	return context.WithValue(ctx, loggerKey, Logger(ctx).With(zap.Any(key, value)))
}

// Fatal logs the message with the default logger, then exits.
func Fatal(msg string, fields ...zap.Field) {
	defaultLogger.Fatal(msg, fields...)
}
