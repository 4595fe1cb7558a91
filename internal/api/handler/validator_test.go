package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

type signupPayload struct {
	Name     *string `json:"name" validate:"required"`
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required,password"`
}

type boardPayload struct {
	UserID *string `json:"userId" validate:"required,uuid4"`
	Label  *string `json:"label" validate:"required"`
}

func newBindContext(t *testing.T, body string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func validationIssues(t *testing.T, err error) []domain.ValidationIssue {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	return ve.Issues
}

func TestBind_RequiredIssuesInFieldOrder(t *testing.T) {
	sv := NewSchemaValidator()

	var payload signupPayload
	err := sv.bind(newBindContext(t, `{"username":"walter"}`), &payload)
	issues := validationIssues(t, err)

	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %+v", len(issues), issues)
	}
	if issues[0].Path[0] != "name" || issues[0].Code != "invalid_type" || issues[0].Message != "Required" {
		t.Fatalf("unexpected first issue: %+v", issues[0])
	}
	if issues[1].Path[0] != "password" {
		t.Fatalf("expected password issue second, got %+v", issues[1])
	}
}

func TestBind_EmptyBodyReportsEveryField(t *testing.T) {
	sv := NewSchemaValidator()

	var payload signupPayload
	err := sv.bind(newBindContext(t, ""), &payload)
	issues := validationIssues(t, err)

	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %+v", len(issues), issues)
	}
	for _, issue := range issues {
		if issue.Message != "Required" {
			t.Fatalf("unexpected issue: %+v", issue)
		}
	}
}

func TestBind_InvalidUUID(t *testing.T) {
	sv := NewSchemaValidator()

	var payload boardPayload
	err := sv.bind(newBindContext(t, `{"userId":"not-a-uuid","label":"Work"}`), &payload)
	issues := validationIssues(t, err)

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(issues), issues)
	}
	if issues[0].Code != "invalid_string" || issues[0].Message != "Invalid uuid" || issues[0].Path[0] != "userId" {
		t.Fatalf("unexpected issue: %+v", issues[0])
	}
}

func TestBind_WeakPassword(t *testing.T) {
	sv := NewSchemaValidator()

	cases := []string{"short1", "onlyletters", "12345678"}
	for _, pw := range cases {
		var payload signupPayload
		body := `{"name":"Walter","username":"walter","password":"` + pw + `"}`
		err := sv.bind(newBindContext(t, body), &payload)
		issues := validationIssues(t, err)
		if len(issues) != 1 || issues[0].Message != "Invalid" || issues[0].Path[0] != "password" {
			t.Fatalf("password %q: unexpected issues %+v", pw, issues)
		}
	}

	var payload signupPayload
	body := `{"name":"Walter","username":"walter","password":"testPassword123!"}`
	if err := sv.bind(newBindContext(t, body), &payload); err != nil {
		t.Fatalf("valid password rejected: %v", err)
	}
}

func TestBind_WrongType(t *testing.T) {
	sv := NewSchemaValidator()

	var payload boardPayload
	err := sv.bind(newBindContext(t, `{"userId":123,"label":"Work"}`), &payload)
	issues := validationIssues(t, err)

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(issues), issues)
	}
	if issues[0].Code != "invalid_type" || issues[0].Message != "Expected string, received number" {
		t.Fatalf("unexpected issue: %+v", issues[0])
	}
}

func TestBindStrict_UnrecognizedKeys(t *testing.T) {
	sv := NewSchemaValidator()

	var payload boardPayload
	body := `{"userId":"4f2d1f1e-1111-4abc-9def-222233334444","extra":1,"label":"Work","another":true}`
	err := sv.bindStrict(newBindContext(t, body), &payload)
	issues := validationIssues(t, err)

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(issues), issues)
	}
	issue := issues[0]
	if issue.Code != "unrecognized_keys" {
		t.Fatalf("unexpected code: %q", issue.Code)
	}
	if issue.Message != "Unrecognized key(s) in object: 'extra', 'another'" {
		t.Fatalf("unexpected message: %q", issue.Message)
	}
	if len(issue.Path) != 0 {
		t.Fatalf("expected empty path, got %+v", issue.Path)
	}
}

func TestBindStrict_KnownKeysPass(t *testing.T) {
	sv := NewSchemaValidator()

	var payload boardPayload
	body := `{"userId":"4f2d1f1e-1111-4abc-9def-222233334444","label":"Work"}`
	if err := sv.bindStrict(newBindContext(t, body), &payload); err != nil {
		t.Fatalf("bindStrict returned error: %v", err)
	}
	if payload.Label == nil || *payload.Label != "Work" {
		t.Fatalf("payload not populated: %+v", payload)
	}
}

func TestBind_MalformedBodyIsNotAValidationError(t *testing.T) {
	sv := NewSchemaValidator()

	var payload boardPayload
	err := sv.bind(newBindContext(t, `{"userId":`), &payload)
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		t.Fatalf("malformed body should not map to a validation error, got %+v", ve)
	}
}
