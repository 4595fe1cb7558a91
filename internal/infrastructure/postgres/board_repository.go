package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// BoardRepository persists boards in the boards table.
type BoardRepository struct {
	pool *pgxpool.Pool
}

func NewBoardRepository(pool *pgxpool.Pool) *BoardRepository {
	return &BoardRepository{pool: pool}
}

func (r *BoardRepository) Create(ctx context.Context, userID, label string) (*domain.Board, error) {
	const q = `
		INSERT INTO boards (user_id, label)
		VALUES ($1, $2)
		RETURNING id, date_created`

	b := domain.Board{UserID: userID, Label: label}
	if err := r.pool.QueryRow(ctx, q, userID, label).Scan(&b.ID, &b.DateCreated); err != nil {
		return nil, translateUnique(fmt.Errorf("insert board: %w", err))
	}
	return &b, nil
}

func (r *BoardRepository) FindByID(ctx context.Context, id string) (*domain.Board, error) {
	const q = `
		SELECT id, user_id, label, date_created
		FROM boards
		WHERE id = $1`

	var b domain.Board
	err := r.pool.QueryRow(ctx, q, id).Scan(&b.ID, &b.UserID, &b.Label, &b.DateCreated)
	if notFound(err) {
		return nil, domain.ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select board: %w", err)
	}
	return &b, nil
}

func (r *BoardRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Board, error) {
	const q = `
		SELECT id, user_id, label, date_created
		FROM boards
		WHERE user_id = $1
		ORDER BY date_created`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("select boards: %w", err)
	}
	defer rows.Close()

	boards := []domain.Board{}
	for rows.Next() {
		var b domain.Board
		if err := rows.Scan(&b.ID, &b.UserID, &b.Label, &b.DateCreated); err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

func (r *BoardRepository) Update(ctx context.Context, id, label string) (*domain.Board, error) {
	const q = `
		UPDATE boards
		SET label = $2
		WHERE id = $1
		RETURNING id, user_id, label, date_created`

	var b domain.Board
	err := r.pool.QueryRow(ctx, q, id, label).Scan(&b.ID, &b.UserID, &b.Label, &b.DateCreated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update board: %w", err)
	}
	return &b, nil
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM boards WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	return nil
}
