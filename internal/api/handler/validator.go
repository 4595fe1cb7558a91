package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

// schemaValidator checks request payloads against declared shapes and
// reports every violation as a *domain.ValidationError, enumerating all
// issues instead of stopping at the first.
type schemaValidator struct {
	v *validator.Validate
}

// NewSchemaValidator returns a schemaValidator shared by all handlers.
func NewSchemaValidator() *schemaValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Passwords need at least 8 characters with a letter and a digit.
	// regexp has no lookahead, so the rule is checked rune by rune.
	if err := v.RegisterValidation("password", validPassword); err != nil {
		panic(err)
	}
	return &schemaValidator{v: v}
}

func validPassword(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if len(pw) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// bind decodes the JSON body into dst and validates it. An absent body
// decodes to the zero value so that required-field issues are reported
// per field rather than as a decoding failure.
func (sv *schemaValidator) bind(c echo.Context, dst any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := decodeBody(body, dst); err != nil {
		return err
	}
	return sv.check(dst)
}

// bindStrict is bind for closed shapes: any top-level key outside dst's
// declared fields fails with one unrecognized_keys issue naming every
// offending key in document order.
func (sv *schemaValidator) bindStrict(c echo.Context, dst any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	unknown, err := unknownKeys(body, declaredKeys(dst))
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		quoted := make([]string, len(unknown))
		for i, k := range unknown {
			quoted[i] = "'" + k + "'"
		}
		return &domain.ValidationError{Issues: []domain.ValidationIssue{{
			Code:    "unrecognized_keys",
			Path:    []any{},
			Message: "Unrecognized key(s) in object: " + strings.Join(quoted, ", "),
		}}}
	}

	if err := decodeBody(body, dst); err != nil {
		return err
	}
	return sv.check(dst)
}

// check validates an already populated value, collecting one issue per
// violated field in declaration order.
func (sv *schemaValidator) check(dst any) error {
	err := sv.v.Struct(dst)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	issues := make([]domain.ValidationIssue, 0, len(ve))
	for _, fe := range ve {
		issues = append(issues, issueFromFieldError(fe))
	}
	return &domain.ValidationError{Issues: issues}
}

func issueFromFieldError(fe validator.FieldError) domain.ValidationIssue {
	path := []any{fe.Field()}
	switch fe.Tag() {
	case "required":
		return domain.ValidationIssue{Code: "invalid_type", Path: path, Message: "Required"}
	case "uuid", "uuid4":
		return domain.ValidationIssue{Code: "invalid_string", Path: path, Message: "Invalid uuid"}
	default:
		return domain.ValidationIssue{Code: "invalid_string", Path: path, Message: "Invalid"}
	}
}

func decodeBody(body []byte, dst any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return &domain.ValidationError{Issues: []domain.ValidationIssue{{
				Code:    "invalid_type",
				Path:    []any{ute.Field},
				Message: fmt.Sprintf("Expected %s, received %s", jsonTypeName(ute.Type), ute.Value),
			}}}
		}
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// unknownKeys returns the top-level object keys in body that are not in
// allowed, preserving document order. A missing or non-object body has no
// keys to reject.
func unknownKeys(body []byte, allowed map[string]bool) ([]string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	var unknown []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode body: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode body: unexpected token %v", tok)
		}
		if !allowed[key] {
			unknown = append(unknown, key)
		}

		var discard json.RawMessage
		if err := dec.Decode(&discard); err != nil {
			return nil, fmt.Errorf("decode body: %w", err)
		}
	}
	return unknown, nil
}

// declaredKeys lists the json field names of dst's struct type.
func declaredKeys(dst any) map[string]bool {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	keys := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
