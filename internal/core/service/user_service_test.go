package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/kanban-api/internal/core/domain"
)

func TestUserService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewUserService(users, sessions, "secret", time.Hour, zerolog.Nop())

	details, cookie, err := svc.Register(context.Background(), "Walter", "walter", "hunter2abc1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if details.Name != "Walter" || details.Username != "walter" {
		t.Fatalf("unexpected details: %+v", details)
	}
	if cookie == "" {
		t.Fatalf("expected a signed cookie value")
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected a session to be opened")
	}

	stored := users.users[details.ID]
	if stored.PasswordHash == "hunter2abc1" {
		t.Fatalf("password stored unhashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2abc1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	users := newStubUserRepo(&domain.User{ID: "user-1", Username: "walter"})
	svc := NewUserService(users, newStubSessionStore(), "secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Register(context.Background(), "Walter", "walter", "hunter2abc1")
	var ce *domain.ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *domain.ConstraintError, got %v", err)
	}
	if len(ce.Violations) != 1 || ce.Violations[0].Message != "username must be unique" {
		t.Fatalf("unexpected violations: %+v", ce.Violations)
	}
}
