package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// BoardService implements board CRUD with direct-owner authorization.
type BoardService struct {
	boards ports.BoardRepository
	users  ports.UserRepository
	owner  chain
	logger zerolog.Logger
}

func NewBoardService(boards ports.BoardRepository, users ports.UserRepository, logger zerolog.Logger) *BoardService {
	return &BoardService{
		boards: boards,
		users:  users,
		owner:  chain{boardHop(boards)},
		logger: logger,
	}
}

func (s *BoardService) Create(ctx context.Context, actorID, userID, label string) (*domain.Board, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, user.ID, phasePayload); err != nil {
		return nil, err
	}

	board, err := s.boards.Create(ctx, userID, label)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("board_id", board.ID).Str("user_id", userID).Msg("board created")
	return board, nil
}

func (s *BoardService) GetByID(ctx context.Context, actorID, boardID string) (*domain.Board, error) {
	board, err := s.boards.FindByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, board.UserID, phaseResource); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *BoardService) ListByUserID(ctx context.Context, actorID, userID string) ([]domain.Board, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, user.ID, phasePayload); err != nil {
		return nil, err
	}
	return s.boards.FindByUserID(ctx, userID)
}

func (s *BoardService) Update(ctx context.Context, actorID, boardID, label string) (*domain.Board, error) {
	if err := s.owner.authorize(ctx, actorID, boardID, phaseResource); err != nil {
		return nil, err
	}
	board, err := s.boards.Update(ctx, boardID, label)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("board_id", boardID).Msg("board updated")
	return board, nil
}

// Delete is idempotent: a board that is already gone reports success. The
// existence check therefore runs before the ownership check.
func (s *BoardService) Delete(ctx context.Context, actorID, boardID string) error {
	err := s.owner.authorize(ctx, actorID, boardID, phaseResource)
	if errors.Is(err, domain.ErrBoardNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.boards.Delete(ctx, boardID); err != nil {
		return err
	}
	s.logger.Info().Str("board_id", boardID).Msg("board deleted")
	return nil
}
