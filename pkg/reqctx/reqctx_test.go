package reqctx

import (
	"context"
	"testing"
)

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || SessionIDFromContext(ctx) != "" {
		t.Fatal("empty context must yield empty ids")
	}

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "req-1", SessionID: "sess-1"})
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q", got)
	}
	if got := SessionIDFromContext(ctx); got != "sess-1" {
		t.Errorf("SessionIDFromContext = %q", got)
	}

	var nilMeta *RequestMeta
	if _, ok := RequestMetaFromContext(WithRequestMeta(context.Background(), nilMeta)); ok {
		t.Error("nil meta must not be reported as present")
	}
}
