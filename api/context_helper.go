package api

import (
	"context"
	"time"
)

// UpstreamTimeout is the default timeout for calls the relay makes to
// Turnstile
const UpstreamTimeout = 10 * time.Second

type contextKey string

const requestIDKey contextKey = "requestId"

// WithUpstreamTimeout creates a context with the upstream timeout
func WithUpstreamTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout <= 0 {
		timeout = UpstreamTimeout
	}
	return context.WithTimeout(parent, timeout)
}

// WithRequestID stores the request id on ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id stored on ctx, or ""
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
