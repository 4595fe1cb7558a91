package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// CreateCardInput carries the whitelisted card creation fields.
type CreateCardInput struct {
	UserID   string
	ColumnID string
	Brief    string
	Body     *string
	Color    *string
}

// UpdateCardInput carries the whitelisted card update fields. Nil fields are
// left unchanged.
type UpdateCardInput struct {
	ColumnID *string
	Brief    *string
	Body     *string
	Color    *string
}

// CardRepository persists cards.
type CardRepository interface {
	Create(ctx context.Context, in CreateCardInput) (*domain.Card, error)
	FindByID(ctx context.Context, id string) (*domain.Card, error)
	FindByColumnID(ctx context.Context, columnID string) ([]domain.Card, error)
	Update(ctx context.Context, id string, in UpdateCardInput) (*domain.Card, error)
	Delete(ctx context.Context, id string) error
	DeleteByColumnID(ctx context.Context, columnID string) error
}
