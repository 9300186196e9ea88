// Package auth carries request identity. Token issuance happens upstream;
// this package only verifies bearer tokens and places claims in the request
// context.
package auth

import (
	"context"
	"errors"
)

// UserClaims holds the authenticated user's identity.
type UserClaims struct {
	UID   string
	Email string
	Name  string
}

type contextKey struct{}

// WithUserClaims returns a context carrying the given claims.
func WithUserClaims(ctx context.Context, claims *UserClaims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// GetUserClaims extracts claims from the context.
func GetUserClaims(ctx context.Context) (*UserClaims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*UserClaims)
	return claims, ok
}

// ErrUnauthenticated is returned when a request carries no valid identity.
var ErrUnauthenticated = errors.New("unauthenticated")

// RequireAuth returns the claims or ErrUnauthenticated.
func RequireAuth(ctx context.Context) (*UserClaims, error) {
	claims, ok := GetUserClaims(ctx)
	if !ok || claims.UID == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
