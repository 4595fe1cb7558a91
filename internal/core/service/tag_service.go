package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// TagService implements tag CRUD and card attachment.
type TagService struct {
	tags   ports.TagRepository
	cards  ports.CardRepository
	users  ports.UserRepository
	owner  chain
	card   chain
	logger zerolog.Logger
}

func NewTagService(tags ports.TagRepository, cards ports.CardRepository, users ports.UserRepository, logger zerolog.Logger) *TagService {
	return &TagService{
		tags:   tags,
		cards:  cards,
		users:  users,
		owner:  chain{tagHop(tags)},
		card:   chain{cardHop(cards)},
		logger: logger,
	}
}

func (s *TagService) Create(ctx context.Context, actorID, userID, cardID, label, color string) (*domain.Tag, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, user.ID, phasePayload); err != nil {
		return nil, err
	}
	if _, err := s.cards.FindByID(ctx, cardID); err != nil {
		return nil, err
	}

	tag, err := s.tags.Create(ctx, userID, cardID, label, color)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("tag_id", tag.ID).Str("user_id", userID).Msg("tag created")
	return tag, nil
}

func (s *TagService) ListByUserID(ctx context.Context, actorID, userID string) ([]domain.Tag, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, user.ID, phasePayload); err != nil {
		return nil, err
	}
	return s.tags.FindByUserID(ctx, userID)
}

// AddCard attaches a card to a tag. The card is checked first so a missing
// card reports "card does not exist" even when the tag is also missing; both
// the card and the tag must belong to the session user.
func (s *TagService) AddCard(ctx context.Context, actorID, tagID, cardID string) (*domain.Tag, error) {
	if err := s.card.authorize(ctx, actorID, cardID, phaseResource); err != nil {
		return nil, err
	}
	if err := s.owner.authorize(ctx, actorID, tagID, phaseResource); err != nil {
		return nil, err
	}

	tag, err := s.tags.AddCard(ctx, tagID, cardID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("tag_id", tagID).Str("card_id", cardID).Msg("card tagged")
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, actorID, tagID string) error {
	err := s.owner.authorize(ctx, actorID, tagID, phaseResource)
	if errors.Is(err, domain.ErrTagNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.tags.Delete(ctx, tagID); err != nil {
		return err
	}
	s.logger.Info().Str("tag_id", tagID).Msg("tag deleted")
	return nil
}
