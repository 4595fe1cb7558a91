package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// CardRepository persists cards in the cards table.
type CardRepository struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

func (r *CardRepository) Create(ctx context.Context, in ports.CreateCardInput) (*domain.Card, error) {
	const q = `
		INSERT INTO cards (user_id, column_id, brief, body, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date_created`

	card := domain.Card{
		UserID:   in.UserID,
		ColumnID: in.ColumnID,
		Brief:    in.Brief,
		Body:     in.Body,
		Color:    in.Color,
	}
	if err := r.pool.QueryRow(ctx, q, in.UserID, in.ColumnID, in.Brief, in.Body, in.Color).
		Scan(&card.ID, &card.DateCreated); err != nil {
		return nil, translateUnique(fmt.Errorf("insert card: %w", err))
	}
	return &card, nil
}

func (r *CardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	const q = `
		SELECT id, user_id, column_id, brief, body, color, date_created
		FROM cards
		WHERE id = $1`

	var card domain.Card
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&card.ID, &card.UserID, &card.ColumnID, &card.Brief, &card.Body, &card.Color, &card.DateCreated)
	if notFound(err) {
		return nil, domain.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select card: %w", err)
	}
	return &card, nil
}

func (r *CardRepository) FindByColumnID(ctx context.Context, columnID string) ([]domain.Card, error) {
	const q = `
		SELECT id, user_id, column_id, brief, body, color, date_created
		FROM cards
		WHERE column_id = $1
		ORDER BY date_created`

	rows, err := r.pool.Query(ctx, q, columnID)
	if err != nil {
		return nil, fmt.Errorf("select cards: %w", err)
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		var card domain.Card
		if err := rows.Scan(&card.ID, &card.UserID, &card.ColumnID, &card.Brief, &card.Body, &card.Color, &card.DateCreated); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// Update applies only the non-nil fields; nil fields keep their stored value.
func (r *CardRepository) Update(ctx context.Context, id string, in ports.UpdateCardInput) (*domain.Card, error) {
	const q = `
		UPDATE cards
		SET column_id = COALESCE($2::uuid, column_id),
		    brief     = COALESCE($3, brief),
		    body      = COALESCE($4, body),
		    color     = COALESCE($5, color)
		WHERE id = $1
		RETURNING id, user_id, column_id, brief, body, color, date_created`

	var card domain.Card
	err := r.pool.QueryRow(ctx, q, id, in.ColumnID, in.Brief, in.Body, in.Color).
		Scan(&card.ID, &card.UserID, &card.ColumnID, &card.Brief, &card.Body, &card.Color, &card.DateCreated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return &card, nil
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

func (r *CardRepository) DeleteByColumnID(ctx context.Context, columnID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE column_id = $1`, columnID); err != nil {
		return fmt.Errorf("delete cards by column: %w", err)
	}
	return nil
}
