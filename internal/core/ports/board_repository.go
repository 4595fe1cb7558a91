package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// BoardRepository persists boards. FindByID reports a missing row as
// domain.ErrBoardNotFound; Delete of a missing row is a no-op.
type BoardRepository interface {
	Create(ctx context.Context, userID, label string) (*domain.Board, error)
	FindByID(ctx context.Context, id string) (*domain.Board, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Board, error)
	Update(ctx context.Context, id, label string) (*domain.Board, error)
	Delete(ctx context.Context, id string) error
}
