// Package httpctx carries the authenticated identity on a request context.
package httpctx

import (
	"context"

	"github.com/dtroode/marketplace-server/internal/model"
)

type contextKey string

const userKey contextKey = "user"

var _ model.ContextManager = (*Manager)(nil)

// Manager implements model.ContextManager over context values.
type Manager struct{}

// NewManager creates a context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the identity.
func (m *Manager) SetUserToContext(ctx context.Context, user model.TokenUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the identity set by SetUserToContext.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.TokenUser, bool) {
	user, ok := ctx.Value(userKey).(model.TokenUser)
	return user, ok
}
