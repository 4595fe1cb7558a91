package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// ActivityService implements the append-only card audit trail. Both
// operations authorize against the owner of the referenced card.
type ActivityService struct {
	activities ports.ActivityRepository
	cards      ports.CardRepository
	card       chain
	logger     zerolog.Logger
}

func NewActivityService(activities ports.ActivityRepository, cards ports.CardRepository, logger zerolog.Logger) *ActivityService {
	return &ActivityService{
		activities: activities,
		cards:      cards,
		card:       chain{cardHop(cards)},
		logger:     logger,
	}
}

func (s *ActivityService) Create(ctx context.Context, actorID, userID, cardID, activityType, description string) (*domain.Activity, error) {
	if err := s.card.authorize(ctx, actorID, cardID, phaseResource); err != nil {
		return nil, err
	}

	activity, err := s.activities.Create(ctx, userID, cardID, activityType, description)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("activity_id", activity.ID).Str("card_id", cardID).Msg("activity recorded")
	return activity, nil
}

func (s *ActivityService) ListByCardID(ctx context.Context, actorID, cardID string) ([]domain.Activity, error) {
	if err := s.card.authorize(ctx, actorID, cardID, phaseResource); err != nil {
		return nil, err
	}
	return s.activities.FindByCardID(ctx, cardID)
}
