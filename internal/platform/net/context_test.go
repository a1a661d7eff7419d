package net

import (
	"context"
	"testing"
)

func TestViewerRoundTrip(t *testing.T) {
	ctx := WithViewer(context.Background(), "acct-7")
	if got := ViewerID(ctx); got != "acct-7" {
		t.Fatalf("ViewerID = %q", got)
	}
	if got := ViewerID(context.Background()); got != "" {
		t.Fatalf("unauthenticated ViewerID = %q, want empty", got)
	}
	// empty stamps are dropped, not stored
	if WithViewer(context.Background(), "") != context.Background() {
		t.Fatal("empty viewer must not allocate a value")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequest(context.Background(), "req-42")
	if got := RequestID(ctx); got != "req-42" {
		t.Fatalf("RequestID = %q", got)
	}
}
