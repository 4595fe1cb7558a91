package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// CardService implements card CRUD. Reads authorize against the card's own
// owner; update and delete walk the chain up to the parent column and use
// its owner instead. Column-scoped operations authorize against the column.
type CardService struct {
	cards     ports.CardRepository
	columns   ports.ColumnRepository
	users     ports.UserRepository
	owner     chain
	viaColumn chain
	column    chain
	logger    zerolog.Logger
}

func NewCardService(cards ports.CardRepository, columns ports.ColumnRepository, users ports.UserRepository, logger zerolog.Logger) *CardService {
	return &CardService{
		cards:     cards,
		columns:   columns,
		users:     users,
		owner:     chain{cardHop(cards)},
		viaColumn: chain{cardHop(cards), columnHop(columns)},
		column:    chain{columnHop(columns)},
		logger:    logger,
	}
}

func (s *CardService) Create(ctx context.Context, actorID string, in ports.CreateCardInput) (*domain.Card, error) {
	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, user.ID, phasePayload); err != nil {
		return nil, err
	}
	if _, err := s.columns.FindByID(ctx, in.ColumnID); err != nil {
		return nil, err
	}

	card, err := s.cards.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("card_id", card.ID).Str("column_id", in.ColumnID).Msg("card created")
	return card, nil
}

func (s *CardService) GetByID(ctx context.Context, actorID, cardID string) (*domain.Card, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, card.UserID, phaseResource); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CardService) ListByColumnID(ctx context.Context, actorID, columnID string) ([]domain.Card, error) {
	if err := s.column.authorize(ctx, actorID, columnID, phaseResource); err != nil {
		return nil, err
	}
	return s.cards.FindByColumnID(ctx, columnID)
}

func (s *CardService) Update(ctx context.Context, actorID, cardID string, in ports.UpdateCardInput) (*domain.Card, error) {
	if err := s.viaColumn.authorize(ctx, actorID, cardID, phaseResource); err != nil {
		return nil, err
	}
	if in.ColumnID != nil {
		if _, err := s.columns.FindByID(ctx, *in.ColumnID); err != nil {
			return nil, err
		}
	}
	card, err := s.cards.Update(ctx, cardID, in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("card_id", cardID).Msg("card updated")
	return card, nil
}

func (s *CardService) Delete(ctx context.Context, actorID, cardID string) error {
	err := s.viaColumn.authorize(ctx, actorID, cardID, phaseResource)
	if errors.Is(err, domain.ErrCardNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.cards.Delete(ctx, cardID); err != nil {
		return err
	}
	s.logger.Info().Str("card_id", cardID).Msg("card deleted")
	return nil
}

// DeleteByColumnID removes every card on the column in one sweep. The column
// itself must exist and belong to the session user.
func (s *CardService) DeleteByColumnID(ctx context.Context, actorID, columnID string) error {
	if err := s.column.authorize(ctx, actorID, columnID, phaseResource); err != nil {
		return err
	}
	if err := s.cards.DeleteByColumnID(ctx, columnID); err != nil {
		return err
	}
	s.logger.Info().Str("column_id", columnID).Msg("cards cleared from column")
	return nil
}
