package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// AuthService implements login and logout. Login returns the signed session
// cookie value alongside the authenticated identity.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.UserDetails, string, error)
	// Logout destroys the session behind the given cookie value. Unknown or
	// malformed cookies are ignored; only a store teardown failure errors.
	Logout(ctx context.Context, cookieValue string) error
	// SessionFromCookie resolves a signed cookie value to the session id and
	// the identity bound to it.
	SessionFromCookie(ctx context.Context, cookieValue string) (*domain.UserDetails, error)
}
