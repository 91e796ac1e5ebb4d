package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Errorf("got %v, want %v", got, id)
	}
}

func TestUserIDFromCtx_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := UserIDFromCtx(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}

	ctx := WithUserID(context.Background(), uuid.Nil)
	if _, ok := UserIDFromCtx(ctx); ok {
		t.Error("expected ok=false for nil UUID")
	}
}

func TestWithPracticeID_And_PracticeIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithPracticeID(context.Background(), id)

	got, ok := PracticeIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Errorf("got %v, want %v", got, id)
	}

	if _, ok := PracticeIDFromCtx(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestIsAdminCtx(t *testing.T) {
	t.Parallel()

	if IsAdminCtx(context.Background()) {
		t.Error("empty context must not be admin")
	}
	if IsAdminCtx(WithRole(context.Background(), "member")) {
		t.Error("member must not be admin")
	}
	if !IsAdminCtx(WithRole(context.Background(), "admin")) {
		t.Error("admin role must be admin")
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("got %q, want req-123", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("missing request id: got %q, want empty", got)
	}
}
