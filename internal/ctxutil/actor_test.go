package ctxutil

import (
	"context"
	"testing"
)

func TestActorFromContext(t *testing.T) {
	if got := ActorFromContext(context.Background()); got != "" {
		t.Errorf("expected empty actor, got %q", got)
	}

	ctx := WithActorID(context.Background(), "supervisor-1")
	if got := ActorFromContext(ctx); got != "supervisor-1" {
		t.Errorf("ActorFromContext() = %q, want supervisor-1", got)
	}
}
