package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// UserRepository persists user accounts in the users table.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, name, username, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (name, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, date_registered`

	u := domain.User{Name: name, Username: username, PasswordHash: passwordHash}
	if err := r.pool.QueryRow(ctx, q, name, username, passwordHash).
		Scan(&u.ID, &u.DateRegistered); err != nil {
		return nil, translateUnique(fmt.Errorf("insert user: %w", err))
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
		SELECT id, name, username, password_hash, date_registered
		FROM users
		WHERE id = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.DateRegistered)
	if notFound(err) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		SELECT id, name, username, password_hash, date_registered
		FROM users
		WHERE username = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, q, username).
		Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.DateRegistered)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user by username: %w", err)
	}
	return &u, nil
}
