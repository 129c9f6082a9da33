package domain

import "context"

// AnonymousUser is the identity recorded for unauthenticated callers.
// Session resolution never fails; it degrades to this sentinel.
const AnonymousUser = "anonymous"

type userKey struct{}

// ContextWithUser stores the caller identity in the context.
func ContextWithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext extracts the caller identity from the context.
// Returns AnonymousUser if no identity was resolved.
func UserFromContext(ctx context.Context) string {
	if u, ok := ctx.Value(userKey{}).(string); ok && u != "" {
		return u
	}
	return AnonymousUser
}
