package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := WithLogger(context.Background(), logger)

	FromContext(ctx).Info("converted", "animations", 2)
	if !strings.Contains(buf.String(), "animations=2") {
		t.Fatalf("log line not written through context logger: %q", buf.String())
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Fatalf("expected slog.Default()")
	}
	ctx := WithLogger(context.Background(), nil)
	if got := FromContext(ctx); got != slog.Default() {
		t.Fatalf("nil logger must fall back to slog.Default()")
	}
}
