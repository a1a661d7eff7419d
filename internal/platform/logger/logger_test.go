package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// Init latches on first call, so a single test owns the writer
func TestRootNamedAndContextChild(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Format: "json", Writer: &buf, Service: "test"})

	Named("querybuild").Info().Msg("hello")
	if out := buf.String(); !strings.Contains(out, `"component":"querybuild"`) {
		t.Fatalf("missing component field: %s", out)
	}

	buf.Reset()
	ctx := WithRequest(context.Background(), "req-1", "viewer-9")
	C(ctx).Info().Msg("scoped")
	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-1"`) || !strings.Contains(out, `"viewer_id":"viewer-9"`) {
		t.Fatalf("context fields missing: %s", out)
	}
}
