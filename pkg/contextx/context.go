package contextx

import (
	"context"
)

type contextKey string

const (
	TraceIDKey    contextKey = "helix.trace_id"
	RequestIDKey  contextKey = "helix.request_id"
	EntryPointKey contextKey = "helix.entry_point" // http | graphql
)

// Untriaged is reported when no trace id was attached upstream.
const Untriaged = "untriaged"

func GetTraceID(ctx context.Context) string { return getString(ctx, TraceIDKey, Untriaged) }
func WithTraceID(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, TraceIDKey, v)
}

func GetRequestID(ctx context.Context) string { return getString(ctx, RequestIDKey, "") }
func WithRequestID(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, RequestIDKey, v)
}

func GetEntryPoint(ctx context.Context) string { return getString(ctx, EntryPointKey, "unknown") }
func WithEntryPoint(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, EntryPointKey, v)
}

func getString(ctx context.Context, key contextKey, fallback string) string {
	if ctx == nil {
		return fallback
	}
	if val, ok := ctx.Value(key).(string); ok {
		return val
	}
	return fallback
}
