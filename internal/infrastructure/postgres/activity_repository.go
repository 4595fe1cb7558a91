package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// ActivityRepository persists card audit entries. Rows are append-only; no
// update or delete statements exist for this table.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Create(ctx context.Context, userID, cardID, activityType, description string) (*domain.Activity, error) {
	const q = `
		INSERT INTO activities (user_id, card_id, type, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, date_created`

	a := domain.Activity{
		UserID:      userID,
		CardID:      cardID,
		Type:        activityType,
		Description: description,
	}
	if err := r.pool.QueryRow(ctx, q, userID, cardID, activityType, description).
		Scan(&a.ID, &a.DateCreated); err != nil {
		return nil, translateUnique(fmt.Errorf("insert activity: %w", err))
	}
	return &a, nil
}

func (r *ActivityRepository) FindByCardID(ctx context.Context, cardID string) ([]domain.Activity, error) {
	const q = `
		SELECT id, user_id, card_id, type, description, date_created
		FROM activities
		WHERE card_id = $1
		ORDER BY date_created`

	rows, err := r.pool.Query(ctx, q, cardID)
	if err != nil {
		return nil, fmt.Errorf("select activities: %w", err)
	}
	defer rows.Close()

	entries := []domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.CardID, &a.Type, &a.Description, &a.DateCreated); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, a)
	}
	return entries, rows.Err()
}
