package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// CardService implements card operations for the session user. Update and
// Delete authorize via the parent column's owner, not the card's own userId.
type CardService interface {
	Create(ctx context.Context, actorID string, in CreateCardInput) (*domain.Card, error)
	GetByID(ctx context.Context, actorID, cardID string) (*domain.Card, error)
	ListByColumnID(ctx context.Context, actorID, columnID string) ([]domain.Card, error)
	Update(ctx context.Context, actorID, cardID string, in UpdateCardInput) (*domain.Card, error)
	Delete(ctx context.Context, actorID, cardID string) error
	DeleteByColumnID(ctx context.Context, actorID, columnID string) error
}
