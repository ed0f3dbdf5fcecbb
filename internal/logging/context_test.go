package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestFromContextReturnsStoredLogger(t *testing.T) {
	stored := slog.Default().With("k", "v")
	fallback := slog.Default()

	ctx := WithLogger(context.Background(), stored)
	if got := FromContext(ctx, fallback); got != stored {
		t.Fatalf("expected stored logger")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := slog.Default()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}
	if got := FromContext(nil, fallback); got != fallback {
		t.Fatalf("expected fallback for nil context")
	}
	if ctx := WithLogger(context.Background(), nil); FromContext(ctx, nil) != nil {
		t.Fatalf("expected nil logger to be ignored")
	}
}
