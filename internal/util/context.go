package util

import "context"

// CTXKey is the type of context keys used within this project.
type CTXKey string

const (
	CTXKeyLogger    CTXKey = "logger"
	CTXKeyRequestID CTXKey = "request_id"
)

// WithRequestID attaches the request id to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CTXKeyRequestID, id)
}

// RequestIDFromContext returns the request id if one is attached.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CTXKeyRequestID).(string)
	return id, ok
}
