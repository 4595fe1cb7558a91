package service

import (
	"context"

	"github.com/taskboard/kanban-api/internal/core/ports"
)

// Hop constructors for the ownership chains used across services. Each loads
// one entity and reports its recorded owner plus the next parent id.

func boardHop(repo ports.BoardRepository) hop {
	return func(ctx context.Context, id string) (string, string, error) {
		b, err := repo.FindByID(ctx, id)
		if err != nil {
			return "", "", err
		}
		return b.UserID, "", nil
	}
}

func columnHop(repo ports.ColumnRepository) hop {
	return func(ctx context.Context, id string) (string, string, error) {
		col, err := repo.FindByID(ctx, id)
		if err != nil {
			return "", "", err
		}
		return col.UserID, col.BoardID, nil
	}
}

func cardHop(repo ports.CardRepository) hop {
	return func(ctx context.Context, id string) (string, string, error) {
		card, err := repo.FindByID(ctx, id)
		if err != nil {
			return "", "", err
		}
		return card.UserID, card.ColumnID, nil
	}
}

func tagHop(repo ports.TagRepository) hop {
	return func(ctx context.Context, id string) (string, string, error) {
		tag, err := repo.FindByID(ctx, id)
		if err != nil {
			return "", "", err
		}
		return tag.UserID, "", nil
	}
}
