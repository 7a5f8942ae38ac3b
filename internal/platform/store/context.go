package store

import "context"

type (
	userKey  struct{}
	reqIDKey struct{}
	adminKey struct{}
)

// WithUser attaches the acting user id to the context
func WithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserID retrieves the acting user id from context if present
func UserID(ctx context.Context) (string, bool) {
	s, _ := ctx.Value(userKey{}).(string)
	return s, s != ""
}

// WithAdmin marks the context as running on the elevated pool
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey{}, true)
}

// IsAdmin reports if the context runs with elevated privileges
func IsAdmin(ctx context.Context) bool {
	b, _ := ctx.Value(adminKey{}).(bool)
	return b
}

// WithRequestID attaches a request id to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

// RequestID retrieves a request id from context if present
func RequestID(ctx context.Context) (string, bool) {
	s, _ := ctx.Value(reqIDKey{}).(string)
	return s, s != ""
}
