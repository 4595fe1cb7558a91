package ports

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// ActivityRepository persists card audit entries. Entries are append-only.
type ActivityRepository interface {
	Create(ctx context.Context, userID, cardID, activityType, description string) (*domain.Activity, error)
	FindByCardID(ctx context.Context, cardID string) ([]domain.Activity, error)
}
