package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// ColumnRepository persists board columns in the columns table.
type ColumnRepository struct {
	pool *pgxpool.Pool
}

func NewColumnRepository(pool *pgxpool.Pool) *ColumnRepository {
	return &ColumnRepository{pool: pool}
}

func (r *ColumnRepository) Create(ctx context.Context, userID, boardID, label string) (*domain.Column, error) {
	const q = `
		INSERT INTO columns (user_id, board_id, label)
		VALUES ($1, $2, $3)
		RETURNING id, date_created`

	col := domain.Column{UserID: userID, BoardID: boardID, Label: label}
	if err := r.pool.QueryRow(ctx, q, userID, boardID, label).
		Scan(&col.ID, &col.DateCreated); err != nil {
		return nil, translateUnique(fmt.Errorf("insert column: %w", err))
	}
	return &col, nil
}

func (r *ColumnRepository) FindByID(ctx context.Context, id string) (*domain.Column, error) {
	const q = `
		SELECT id, user_id, board_id, label, date_created
		FROM columns
		WHERE id = $1`

	var col domain.Column
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&col.ID, &col.UserID, &col.BoardID, &col.Label, &col.DateCreated)
	if notFound(err) {
		return nil, domain.ErrColumnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select column: %w", err)
	}
	return &col, nil
}

func (r *ColumnRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Column, error) {
	return r.findWhere(ctx, "user_id", userID)
}

func (r *ColumnRepository) FindByBoardID(ctx context.Context, boardID string) ([]domain.Column, error) {
	return r.findWhere(ctx, "board_id", boardID)
}

func (r *ColumnRepository) findWhere(ctx context.Context, field, value string) ([]domain.Column, error) {
	q := fmt.Sprintf(`
		SELECT id, user_id, board_id, label, date_created
		FROM columns
		WHERE %s = $1
		ORDER BY date_created`, field)

	rows, err := r.pool.Query(ctx, q, value)
	if err != nil {
		return nil, fmt.Errorf("select columns: %w", err)
	}
	defer rows.Close()

	cols := []domain.Column{}
	for rows.Next() {
		var col domain.Column
		if err := rows.Scan(&col.ID, &col.UserID, &col.BoardID, &col.Label, &col.DateCreated); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

func (r *ColumnRepository) Update(ctx context.Context, id, label string) (*domain.Column, error) {
	const q = `
		UPDATE columns
		SET label = $2
		WHERE id = $1
		RETURNING id, user_id, board_id, label, date_created`

	var col domain.Column
	err := r.pool.QueryRow(ctx, q, id, label).
		Scan(&col.ID, &col.UserID, &col.BoardID, &col.Label, &col.DateCreated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrColumnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update column: %w", err)
	}
	return &col, nil
}

func (r *ColumnRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM columns WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete column: %w", err)
	}
	return nil
}
