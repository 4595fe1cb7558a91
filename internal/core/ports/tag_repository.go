package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// TagRepository persists tags and their card attachments.
type TagRepository interface {
	// Create inserts a tag attached to the given card.
	Create(ctx context.Context, userID, cardID, label, color string) (*domain.Tag, error)
	FindByID(ctx context.Context, id string) (*domain.Tag, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Tag, error)
	// AddCard attaches a card to the tag and returns the updated tag.
	AddCard(ctx context.Context, tagID, cardID string) (*domain.Tag, error)
	Delete(ctx context.Context, id string) error
}
