// Package httpctx carries the authenticated user through request
// contexts.
package httpctx

import (
	"context"

	"github.com/avoronov/musicschool-server/internal/model"
)

type contextKey string

const userKey contextKey = "current_user"

// Manager implements model.ContextManager on plain context values.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a child context carrying the user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the user stored by the authentication
// middleware, reporting whether one was present.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
