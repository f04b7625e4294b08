package shared

import (
	"context"

	"github.com/google/uuid"

	"github.com/abdelmajidelayachi/task-manager/internal/domain"
)

// ContextKey is the key type for context values set by the API layer.
type ContextKey string

const (
	// UserContextKey is the context key for the authenticated user.
	UserContextKey ContextKey = "user"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// WithUser returns a copy of ctx carrying the authenticated user.
// The identity is an explicit per-request value, never ambient global
// state.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// GetUser retrieves the authenticated user from the context.
// Returns nil when the request is unauthenticated.
func GetUser(ctx context.Context) *domain.User {
	user, ok := ctx.Value(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// SetTraceID adds a fresh trace ID to the context.
// This is used to correlate logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.New().String())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
