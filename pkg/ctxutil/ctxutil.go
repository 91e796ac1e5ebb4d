package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey     ctxKey = "user_id"
	practiceIDKey ctxKey = "practice_id"
	roleKey       ctxKey = "role"
	requestIDKey  ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithPracticeID stores the tenant (practice) ID in the context.
func WithPracticeID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, practiceIDKey, id)
}

// PracticeIDFromCtx extracts the practice ID from the context.
func PracticeIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(practiceIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the caller's role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// IsAdminCtx reports whether the context caller has the admin role.
func IsAdminCtx(ctx context.Context) bool {
	role, _ := ctx.Value(roleKey).(string)
	return role == "admin"
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
