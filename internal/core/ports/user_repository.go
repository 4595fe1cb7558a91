package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user. Uniqueness violations on name or username
	// surface as *domain.ConstraintError.
	Create(ctx context.Context, name, username, passwordHash string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
