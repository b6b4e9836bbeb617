package requestid

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := ExtractRequestID(ctx); got != 0 {
		t.Errorf("ExtractRequestID() on empty ctx = %d, want 0", got)
	}
	if got := String(ctx); got != "0" {
		t.Errorf("String() on empty ctx = %q, want \"0\"", got)
	}

	ctx = InjectRequestID(ctx, 1729)
	if got := ExtractRequestID(ctx); got != 1729 {
		t.Errorf("ExtractRequestID() = %d, want 1729", got)
	}
	if got := String(ctx); got != "1729" {
		t.Errorf("String() = %q, want \"1729\"", got)
	}
}
