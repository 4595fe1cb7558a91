package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// SessionStore holds server-side session state keyed by an opaque session
// id. The id is the only thing that ever travels to the client.
type SessionStore interface {
	// Create stores the identity triple under a fresh session id.
	Create(ctx context.Context, user domain.UserDetails) (string, error)
	// Get returns the identity bound to the session id, or
	// domain.ErrNoSession when the session does not exist or has expired.
	Get(ctx context.Context, sid string) (*domain.UserDetails, error)
	// Destroy removes the session state. Destroying a missing session is
	// not an error.
	Destroy(ctx context.Context, sid string) error
}
