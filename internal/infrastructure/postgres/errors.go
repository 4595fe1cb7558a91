package postgres

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// uniqueDetailRe extracts the column and value from a unique_violation
// detail, e.g. `Key (username)=(walter) already exists.`.
var uniqueDetailRe = regexp.MustCompile(`Key \((.+?)\)=\((.*)\) already exists`)

// notFound reports whether a lookup failed to produce a row. Malformed uuid
// input raises invalid_text_representation instead of ErrNoRows and counts
// as not found too: a garbage id names nothing.
func notFound(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation
}

// translateUnique converts a unique_violation into the constraint error the
// API reports to clients. Any other error passes through unchanged.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	field := pgErr.ConstraintName
	value := ""
	if m := uniqueDetailRe.FindStringSubmatch(pgErr.Detail); m != nil {
		field, value = m[1], m[2]
	}

	return &domain.ConstraintError{Violations: []domain.ConstraintViolation{{
		Code:    "validation_error",
		Path:    field,
		Value:   value,
		Message: fmt.Sprintf("%s must be unique", field),
	}}}
}
