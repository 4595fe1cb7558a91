package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// TagService implements tag operations for the session user.
type TagService interface {
	Create(ctx context.Context, actorID, userID, cardID, label, color string) (*domain.Tag, error)
	ListByUserID(ctx context.Context, actorID, userID string) ([]domain.Tag, error)
	// AddCard attaches a card to a tag. Both the card and the tag must be
	// owned by the session user.
	AddCard(ctx context.Context, actorID, tagID, cardID string) (*domain.Tag, error)
	Delete(ctx context.Context, actorID, tagID string) error
}
