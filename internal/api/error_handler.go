package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/kanban-api/internal/api/metrics"
	"github.com/taskboard/kanban-api/internal/core/domain"
)

// errorEnvelope is the canonical error shape for all API failures.
type errorEnvelope struct {
	Success   bool   `json:"success"`
	ErrorType string `json:"errorType"`
	Errors    any    `json:"errors"`
}

// baseError is one item of a "base" errorType response. Path and value are
// always present and empty for this kind.
type baseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path"`
	Value   string `json:"value"`
}

// NewHTTPErrorHandler returns the error normalizer: the single place where
// failures become HTTP responses. Handlers and services return domain errors
// untouched; everything not in the fixed taxonomy collapses to a 500 with a
// generic message so internals never leak.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, envelope := normalize(err, log, c)
		metrics.ErrorResponsesTotal.WithLabelValues(envelope.ErrorType, firstCode(envelope)).Inc()
		_ = c.JSON(status, envelope)
	}
}

func normalize(err error, log zerolog.Logger, c echo.Context) (int, errorEnvelope) {
	// Structured validation failures enumerate every violated field.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorEnvelope{
			ErrorType: "validation",
			Errors:    ve.Issues,
		}
	}

	// Store constraint failures carry the offending field and value.
	var ce *domain.ConstraintError
	if errors.As(err, &ce) {
		return http.StatusBadRequest, errorEnvelope{
			ErrorType: "persistence",
			Errors:    ce.Violations,
		}
	}

	var se *domain.SessionError
	if errors.As(err, &se) {
		return http.StatusBadRequest, base("session_error", se.Err.Error())
	}

	switch {
	case errors.Is(err, domain.ErrLoginRequired),
		errors.Is(err, domain.ErrPayloadOwnerMismatch),
		errors.Is(err, domain.ErrResourceOwnerMismatch):
		return http.StatusUnauthorized, base("unauthorized_action", err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, base("invalid_credentials", err.Error())

	case errors.Is(err, domain.ErrBoardNotFound),
		errors.Is(err, domain.ErrColumnNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrTagNotFound):
		return http.StatusBadRequest, base("invalid_request", err.Error())
	}

	// Echo's own errors: routing 404/405 and bind failures.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, base("unknown_error", fmt.Sprintf("%v", he.Message))
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, base("unknown_error", "internal server error")
}

func base(code, message string) errorEnvelope {
	return errorEnvelope{
		ErrorType: "base",
		Errors:    []baseError{{Code: code, Message: message}},
	}
}

func firstCode(env errorEnvelope) string {
	switch items := env.Errors.(type) {
	case []baseError:
		if len(items) > 0 {
			return items[0].Code
		}
	case []domain.ValidationIssue:
		if len(items) > 0 {
			return items[0].Code
		}
	case []domain.ConstraintViolation:
		if len(items) > 0 {
			return items[0].Code
		}
	}
	return "none"
}
