package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// ColumnRepository persists board columns.
type ColumnRepository interface {
	Create(ctx context.Context, userID, boardID, label string) (*domain.Column, error)
	FindByID(ctx context.Context, id string) (*domain.Column, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Column, error)
	FindByBoardID(ctx context.Context, boardID string) ([]domain.Column, error)
	Update(ctx context.Context, id, label string) (*domain.Column, error)
	Delete(ctx context.Context, id string) error
}
