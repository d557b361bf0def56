package domain

import (
	"context"
	"errors"
	"time"
)

var ErrBindingNotFound = errors.New("connection binding not found")

// ConnectionRegistry is the ephemeral connection-to-identity cache.
//
// Bind overwrites any existing binding for the same connection id; re-binds
// are legal and not an error. A ttl of zero disables automatic expiry, in
// which case the binding lives until Unbind. Resolve fails with
// ErrBindingNotFound for unbound or expired connections. Unbind is a no-op
// when the binding is already gone.
type ConnectionRegistry interface {
	Bind(ctx context.Context, connID, userID string, ttl time.Duration) error
	Resolve(ctx context.Context, connID string) (string, error)
	Unbind(ctx context.Context, connID string) error
}
