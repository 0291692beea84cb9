package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	if cid, ok := CorrelationID(ctx); ok {
		t.Fatalf("expected no correlation id, got %q", cid)
	}

	if _, ok := CorrelationID(SetCorrelationID(ctx, "")); ok {
		t.Fatalf("empty correlation id should be reported as missing")
	}

	ctx = SetCorrelationID(ctx, "cid-123")
	if cid, ok := CorrelationID(ctx); !ok || cid != "cid-123" {
		t.Fatalf("expected cid-123, got %q (ok=%v)", cid, ok)
	}
}
