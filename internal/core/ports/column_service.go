package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// ColumnService implements column operations for the session user.
type ColumnService interface {
	Create(ctx context.Context, actorID, userID, boardID, label string) (*domain.Column, error)
	GetByID(ctx context.Context, actorID, columnID string) (*domain.Column, error)
	ListByUserID(ctx context.Context, actorID, userID string) ([]domain.Column, error)
	ListByBoardID(ctx context.Context, actorID, boardID string) ([]domain.Column, error)
	Update(ctx context.Context, actorID, columnID, label string) (*domain.Column, error)
	Delete(ctx context.Context, actorID, columnID string) error
}
