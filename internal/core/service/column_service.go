package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// ColumnService implements column CRUD. Column mutations authorize against
// the column's own owner; board-scoped listing against the board's owner.
type ColumnService struct {
	columns  ports.ColumnRepository
	boards   ports.BoardRepository
	users    ports.UserRepository
	owner    chain
	viaBoard chain
	logger   zerolog.Logger
}

func NewColumnService(columns ports.ColumnRepository, boards ports.BoardRepository, users ports.UserRepository, logger zerolog.Logger) *ColumnService {
	return &ColumnService{
		columns:  columns,
		boards:   boards,
		users:    users,
		owner:    chain{columnHop(columns)},
		viaBoard: chain{boardHop(boards)},
		logger:   logger,
	}
}

func (s *ColumnService) Create(ctx context.Context, actorID, userID, boardID, label string) (*domain.Column, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, user.ID, phasePayload); err != nil {
		return nil, err
	}
	if _, err := s.boards.FindByID(ctx, boardID); err != nil {
		return nil, err
	}

	if label == "" {
		label = domain.DefaultColumnLabel
	}
	column, err := s.columns.Create(ctx, userID, boardID, label)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("column_id", column.ID).Str("board_id", boardID).Msg("column created")
	return column, nil
}

func (s *ColumnService) GetByID(ctx context.Context, actorID, columnID string) (*domain.Column, error) {
	column, err := s.columns.FindByID(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, column.UserID, phaseResource); err != nil {
		return nil, err
	}
	return column, nil
}

func (s *ColumnService) ListByUserID(ctx context.Context, actorID, userID string) ([]domain.Column, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, user.ID, phasePayload); err != nil {
		return nil, err
	}
	return s.columns.FindByUserID(ctx, userID)
}

// ListByBoardID authorizes against the parent board's owner, not the owners
// recorded on the columns themselves.
func (s *ColumnService) ListByBoardID(ctx context.Context, actorID, boardID string) ([]domain.Column, error) {
	if err := s.viaBoard.authorize(ctx, actorID, boardID, phaseResource); err != nil {
		return nil, err
	}
	return s.columns.FindByBoardID(ctx, boardID)
}

func (s *ColumnService) Update(ctx context.Context, actorID, columnID, label string) (*domain.Column, error) {
	if err := s.owner.authorize(ctx, actorID, columnID, phaseResource); err != nil {
		return nil, err
	}
	column, err := s.columns.Update(ctx, columnID, label)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("column_id", columnID).Msg("column updated")
	return column, nil
}

func (s *ColumnService) Delete(ctx context.Context, actorID, columnID string) error {
	err := s.owner.authorize(ctx, actorID, columnID, phaseResource)
	if errors.Is(err, domain.ErrColumnNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.columns.Delete(ctx, columnID); err != nil {
		return err
	}
	s.logger.Info().Str("column_id", columnID).Msg("column deleted")
	return nil
}
