// Package requestid carries the correlation id of an inbound request through a context.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header holding the request id
const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a fresh request id
func New() string {
	return uuid.NewString()
}

// With returns a copy of ctx carrying id
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From returns the request id stored in ctx, or an empty string
func From(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}
