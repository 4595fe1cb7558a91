package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// AuthService implements login and logout against the user store and the
// server-side session store.
type AuthService struct {
	users        ports.UserRepository
	sessions     ports.SessionStore
	cookieSecret string
	sessionTTL   time.Duration
	logger       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, cookieSecret string, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AuthService{
		users:        users,
		sessions:     sessions,
		cookieSecret: cookieSecret,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// Login verifies the credentials, opens a session and returns the identity
// triple plus the signed cookie value.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.UserDetails, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	details := user.Details()
	sid, err := s.sessions.Create(ctx, details)
	if err != nil {
		return nil, "", err
	}

	cookie, err := signSessionCookie(s.cookieSecret, sid, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", details.ID).Msg("session opened")
	return &details, cookie, nil
}

// Logout destroys the session state behind the cookie value. Malformed or
// unsigned cookies are ignored so that logout stays idempotent; only a store
// teardown failure is surfaced, as a *domain.SessionError.
func (s *AuthService) Logout(ctx context.Context, cookieValue string) error {
	sid, err := parseSessionCookie(s.cookieSecret, cookieValue)
	if err != nil {
		return nil
	}
	if err := s.sessions.Destroy(ctx, sid); err != nil {
		return &domain.SessionError{Err: err}
	}
	s.logger.Info().Msg("session destroyed")
	return nil
}

// SessionFromCookie resolves a signed cookie value to the identity bound to
// its session. Any failure reports domain.ErrNoSession.
func (s *AuthService) SessionFromCookie(ctx context.Context, cookieValue string) (*domain.UserDetails, error) {
	sid, err := parseSessionCookie(s.cookieSecret, cookieValue)
	if err != nil {
		return nil, domain.ErrNoSession
	}
	return s.sessions.Get(ctx, sid)
}
