package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

func TestTranslateUnique_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "users_username_key",
		Detail:         "Key (username)=(walter) already exists.",
	}

	err := translateUnique(pgErr)

	var ce *domain.ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *domain.ConstraintError, got %v", err)
	}
	if len(ce.Violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(ce.Violations))
	}
	v := ce.Violations[0]
	if v.Code != "validation_error" || v.Path != "username" || v.Value != "walter" {
		t.Fatalf("unexpected violation: %+v", v)
	}
	if v.Message != "username must be unique" {
		t.Fatalf("unexpected message: %q", v.Message)
	}
}

func TestTranslateUnique_FallsBackToConstraintName(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "users_name_key",
	}

	err := translateUnique(pgErr)

	var ce *domain.ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *domain.ConstraintError, got %v", err)
	}
	v := ce.Violations[0]
	if v.Path != "users_name_key" || v.Value != "" {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestNotFound(t *testing.T) {
	if !notFound(pgx.ErrNoRows) {
		t.Fatal("ErrNoRows must count as not found")
	}
	if !notFound(&pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}) {
		t.Fatal("malformed uuid input must count as not found")
	}
	if notFound(errors.New("connection reset")) {
		t.Fatal("unrelated errors must not count as not found")
	}
}

func TestTranslateUnique_PassesThroughOtherErrors(t *testing.T) {
	fkErr := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	if err := translateUnique(fkErr); !errors.Is(err, fkErr) {
		t.Fatalf("expected foreign key error unchanged, got %v", err)
	}

	plain := errors.New("connection reset")
	if err := translateUnique(plain); !errors.Is(err, plain) {
		t.Fatalf("expected plain error unchanged, got %v", err)
	}
}
