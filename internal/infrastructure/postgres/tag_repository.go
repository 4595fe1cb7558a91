package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// TagRepository persists tags and their card attachments. Attachments live
// in the tag_cards join table; every read aggregates them into CardIDs.
type TagRepository struct {
	pool *pgxpool.Pool
}

func NewTagRepository(pool *pgxpool.Pool) *TagRepository {
	return &TagRepository{pool: pool}
}

const tagSelect = `
	SELECT t.id, t.user_id, t.label, t.color,
	       COALESCE(array_agg(tc.card_id::text ORDER BY tc.date_created)
	                FILTER (WHERE tc.card_id IS NOT NULL), '{}')
	FROM tags t
	LEFT JOIN tag_cards tc ON tc.tag_id = t.id`

func (r *TagRepository) Create(ctx context.Context, userID, cardID, label, color string) (*domain.Tag, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag := domain.Tag{UserID: userID, Label: label, Color: color, CardIDs: []string{cardID}}
	err = tx.QueryRow(ctx,
		`INSERT INTO tags (user_id, label, color) VALUES ($1, $2, $3) RETURNING id`,
		userID, label, color,
	).Scan(&tag.ID)
	if err != nil {
		return nil, translateUnique(fmt.Errorf("insert tag: %w", err))
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO tag_cards (tag_id, card_id) VALUES ($1, $2)`,
		tag.ID, cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("attach card: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &tag, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*domain.Tag, error) {
	q := tagSelect + `
	WHERE t.id = $1
	GROUP BY t.id`

	var tag domain.Tag
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&tag.ID, &tag.UserID, &tag.Label, &tag.Color, &tag.CardIDs)
	if notFound(err) {
		return nil, domain.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select tag: %w", err)
	}
	return &tag, nil
}

func (r *TagRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Tag, error) {
	q := tagSelect + `
	WHERE t.user_id = $1
	GROUP BY t.id
	ORDER BY t.id`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Label, &tag.Color, &tag.CardIDs); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// AddCard attaches the card to the tag. Attaching a card twice is a no-op.
func (r *TagRepository) AddCard(ctx context.Context, tagID, cardID string) (*domain.Tag, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tag_cards (tag_id, card_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		tagID, cardID,
	)
	if err != nil {
		return nil, fmt.Errorf("attach card: %w", err)
	}
	return r.FindByID(ctx, tagID)
}

func (r *TagRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
