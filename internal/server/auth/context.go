package auth

import (
	"context"

	"github.com/ryukh1003/blog/internal/models"
)

// ctxKey is the unexported request-context key for the auth state.
type ctxKey struct{}

// Context is the per-request authentication state: anonymous, or
// carrying the user resolved from the session cookie. The zero value
// is anonymous, so handlers can always read it safely; there is no
// nil-user dereference path.
type Context struct {
	user *models.User
}

// Anonymous returns the absent auth state.
func Anonymous() Context {
	return Context{}
}

// Authenticated returns an auth state carrying the resolved user.
func Authenticated(user *models.User) Context {
	return Context{user: user}
}

// User returns the authenticated user and whether one is present.
// Handlers requiring identity must branch on the second value.
func (c Context) User() (*models.User, bool) {
	if c.user == nil {
		return nil, false
	}
	return c.user, true
}

// WithContext attaches the auth state to a request context.
func WithContext(ctx context.Context, ac Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, ac)
}

// FromContext extracts the auth state from a request context.
// A request that never passed through the session middleware reads as
// anonymous.
func FromContext(ctx context.Context) Context {
	ac, ok := ctx.Value(ctxKey{}).(Context)
	if !ok {
		return Anonymous()
	}
	return ac
}
