package planclient

import "context"

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const sessionTokenContextKey contextKey = "session_token"

// WithSessionToken stores the portal session token for outbound plan-service
// calls. The HTTP layer attaches it when a parent session exists.
func WithSessionToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionTokenContextKey, token)
}

// SessionTokenFromContext returns the stored session token, or ""
func SessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenContextKey).(string)
	return token
}
