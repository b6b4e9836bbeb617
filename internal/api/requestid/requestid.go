// Package requestid carries the per-request id through a context.
package requestid

import (
	"context"
	"strconv"
)

type requestIDKeyType struct{}

var requestIDKey requestIDKeyType

func InjectRequestID(ctx context.Context, requestID uint64) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ExtractRequestID returns the id stored in ctx, or 0.
func ExtractRequestID(ctx context.Context) uint64 {
	if v, ok := ctx.Value(requestIDKey).(uint64); ok {
		return v
	}
	return 0
}

// String returns the id of ctx in the form used by error bodies.
func String(ctx context.Context) string {
	return strconv.FormatUint(ExtractRequestID(ctx), 10)
}
