// Package utils provides general-purpose helper utilities used across
// different parts of the application: context identity keys, password
// hashing, JWT issuing and verification, JSON response writing, the HTTP
// client and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-storybook/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// verified caller identity.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the caller identity from the context.
//
// ok is false when no identity was stored or the stored identity has an
// empty ID.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.ID == "" {
		return models.Identity{}, false
	}
	return identity, true
}
