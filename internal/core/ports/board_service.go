package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// BoardService implements board operations on behalf of the session user
// identified by actorID. Every method enforces the ownership rules before
// touching the store.
type BoardService interface {
	Create(ctx context.Context, actorID, userID, label string) (*domain.Board, error)
	GetByID(ctx context.Context, actorID, boardID string) (*domain.Board, error)
	ListByUserID(ctx context.Context, actorID, userID string) ([]domain.Board, error)
	Update(ctx context.Context, actorID, boardID, label string) (*domain.Board, error)
	// Delete succeeds when the board is already gone.
	Delete(ctx context.Context, actorID, boardID string) error
}
