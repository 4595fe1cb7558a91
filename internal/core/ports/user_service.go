package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// UserService implements registration. A successful registration also opens
// a session; the returned string is the signed session cookie value.
type UserService interface {
	Register(ctx context.Context, name, username, password string) (*domain.UserDetails, string, error)
}
