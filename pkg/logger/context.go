package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// With stores a logger carrying the given attributes in the context. The
// auth middleware uses it to stamp the username onto every log line a
// request produces; the trace-ID middleware does the same for traceID.
func With(ctx context.Context, attrs ...any) context.Context {
	return context.WithValue(ctx, loggerKey, From(ctx).With(attrs...))
}

// From returns the request-scoped logger, falling back to the process-wide
// one when the context carries none.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
