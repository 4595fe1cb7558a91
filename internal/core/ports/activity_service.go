package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// ActivityService implements the card audit trail. Both operations authorize
// against the owner of the referenced card.
type ActivityService interface {
	Create(ctx context.Context, actorID, userID, cardID, activityType, description string) (*domain.Activity, error)
	ListByCardID(ctx context.Context, actorID, cardID string) ([]domain.Activity, error)
}
