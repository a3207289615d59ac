// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, checksums,
// HTTP response writing, HTTP client initialization, identity token
// verification, and other common operations.
package utils

import (
	"context"

	"github.com/civilci/intake-portal/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key used to store the authenticated user in the
// context. Prefer WithActor and ActorFromContext over using it directly.
var ActorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying the authenticated user.
func WithActor(ctx context.Context, actor *models.User) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// ActorFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true : a non-nil user is present
//   - ok == false: the request is anonymous
func ActorFromContext(ctx context.Context) (*models.User, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(*models.User)
	return actor, ok && actor != nil
}
