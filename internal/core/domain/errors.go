package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the fixed failure vocabulary. Handlers and services
// return these untouched; the API error handler is the only place they are
// turned into HTTP responses.
var (
	// ErrLoginRequired rejects any protected request without a live session.
	ErrLoginRequired = errors.New("must be logged in to perform this action")

	// ErrPayloadOwnerMismatch rejects an ownership check that runs before the
	// primary lookup: a create payload or list-by-user parameter naming a
	// userId other than the session's.
	ErrPayloadOwnerMismatch = errors.New("not authorized to perform that action")

	// ErrResourceOwnerMismatch rejects an ownership check on an already
	// loaded resource (or its parent in the ownership chain).
	ErrResourceOwnerMismatch = errors.New("not authorized to perform this action")

	// ErrInvalidCredentials rejects a login whose password does not match.
	ErrInvalidCredentials = errors.New("credentials do not match records")

	ErrUserNotFound   = errors.New("user does not exist")
	ErrBoardNotFound  = errors.New("board does not exist")
	ErrColumnNotFound = errors.New("column does not exist")
	ErrCardNotFound   = errors.New("card does not exist")
	ErrTagNotFound    = errors.New("tag does not exist")

	// ErrNoSession reports a session id with no backing store entry.
	ErrNoSession = errors.New("no active session")
)

// SessionError wraps a failure to tear down server-side session state.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session teardown failed: %v", e.Err)
}

func (e *SessionError) Unwrap() error { return e.Err }

// ValidationIssue is one violation found while checking input against a
// declared shape. Path segments are strings (object keys) or ints (array
// indexes), kept abstract from any particular validation library.
type ValidationIssue struct {
	Code    string `json:"code"`
	Path    []any  `json:"path"`
	Message string `json:"message"`
}

// ValidationError enumerates every violation found in one input. All
// violations are reported together, never just the first.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ConstraintViolation is one persistence-level constraint failure, such as a
// violated uniqueness rule, attributed to a field and the offending value.
type ConstraintViolation struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ConstraintError carries the constraint violations raised by one write.
type ConstraintError struct {
	Violations []ConstraintViolation
}

func (e *ConstraintError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return "constraint violated: " + strings.Join(msgs, "; ")
}
