package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

func handleError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/boards/board-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return rec.Code, body
}

func firstError(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	items, ok := body["errors"].([]any)
	if !ok || len(items) == 0 {
		t.Fatalf("missing errors array: %+v", body)
	}
	item, ok := items[0].(map[string]any)
	if !ok {
		t.Fatalf("unexpected error item: %+v", items[0])
	}
	return item
}

func TestErrorHandler_ValidationError(t *testing.T) {
	err := &domain.ValidationError{Issues: []domain.ValidationIssue{
		{Code: "invalid_type", Path: []any{"label"}, Message: "Required"},
		{Code: "invalid_string", Path: []any{"userId"}, Message: "Invalid uuid"},
	}}

	status, body := handleError(t, err)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["success"] != false || body["errorType"] != "validation" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	items := body["errors"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(items))
	}
	first := items[0].(map[string]any)
	if first["code"] != "invalid_type" || first["message"] != "Required" {
		t.Fatalf("unexpected first issue: %+v", first)
	}
	if _, hasValue := first["value"]; hasValue {
		t.Fatal("validation issues must not carry a value field")
	}
}

func TestErrorHandler_ConstraintError(t *testing.T) {
	err := &domain.ConstraintError{Violations: []domain.ConstraintViolation{
		{Code: "validation_error", Path: "username", Value: "walter", Message: "username must be unique"},
	}}

	status, body := handleError(t, err)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body["errorType"] != "persistence" {
		t.Fatalf("unexpected errorType: %v", body["errorType"])
	}
	item := firstError(t, body)
	if item["code"] != "validation_error" || item["path"] != "username" ||
		item["value"] != "walter" || item["message"] != "username must be unique" {
		t.Fatalf("unexpected violation: %+v", item)
	}
}

func TestErrorHandler_UnauthorizedSentinels(t *testing.T) {
	cases := []struct {
		err     error
		message string
	}{
		{domain.ErrLoginRequired, "must be logged in to perform this action"},
		{domain.ErrPayloadOwnerMismatch, "not authorized to perform that action"},
		{domain.ErrResourceOwnerMismatch, "not authorized to perform this action"},
	}
	for _, tc := range cases {
		status, body := handleError(t, tc.err)
		if status != http.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", tc.err, status)
		}
		if body["errorType"] != "base" {
			t.Fatalf("%v: unexpected errorType %v", tc.err, body["errorType"])
		}
		item := firstError(t, body)
		if item["code"] != "unauthorized_action" || item["message"] != tc.message {
			t.Fatalf("%v: unexpected item %+v", tc.err, item)
		}
		if item["path"] != "" || item["value"] != "" {
			t.Fatalf("%v: base items carry empty path and value, got %+v", tc.err, item)
		}
	}
}

func TestErrorHandler_CredentialErrors(t *testing.T) {
	for _, err := range []error{domain.ErrInvalidCredentials, domain.ErrUserNotFound} {
		status, body := handleError(t, err)
		if status != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", err, status)
		}
		item := firstError(t, body)
		if item["code"] != "invalid_credentials" || item["message"] != err.Error() {
			t.Fatalf("%v: unexpected item %+v", err, item)
		}
	}
}

func TestErrorHandler_MissingResources(t *testing.T) {
	cases := map[error]string{
		domain.ErrBoardNotFound:  "board does not exist",
		domain.ErrColumnNotFound: "column does not exist",
		domain.ErrCardNotFound:   "card does not exist",
		domain.ErrTagNotFound:    "tag does not exist",
	}
	for err, message := range cases {
		status, body := handleError(t, err)
		if status != http.StatusBadRequest {
			t.Fatalf("%v: expected 400, got %d", err, status)
		}
		item := firstError(t, body)
		if item["code"] != "invalid_request" || item["message"] != message {
			t.Fatalf("%v: unexpected item %+v", err, item)
		}
	}
}

func TestErrorHandler_SessionError(t *testing.T) {
	err := &domain.SessionError{Err: errors.New("redis unreachable")}

	status, body := handleError(t, err)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	item := firstError(t, body)
	if item["code"] != "session_error" || item["message"] != "redis unreachable" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestErrorHandler_UnknownErrorHidesInternals(t *testing.T) {
	status, body := handleError(t, errors.New("pq: connection refused"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	item := firstError(t, body)
	if item["code"] != "unknown_error" || item["message"] != "internal server error" {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, body := handleError(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	item := firstError(t, body)
	if item["code"] != "unknown_error" || item["message"] != "Not Found" {
		t.Fatalf("unexpected item: %+v", item)
	}
}
