package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// UserService implements registration. Password complexity is enforced at
// the schema layer; this service only hashes and stores.
type UserService struct {
	users        ports.UserRepository
	sessions     ports.SessionStore
	cookieSecret string
	sessionTTL   time.Duration
	logger       zerolog.Logger
}

func NewUserService(users ports.UserRepository, sessions ports.SessionStore, cookieSecret string, sessionTTL time.Duration, logger zerolog.Logger) *UserService {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &UserService{
		users:        users,
		sessions:     sessions,
		cookieSecret: cookieSecret,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// Register creates the account and immediately opens a session for it.
// Name/username uniqueness violations propagate as *domain.ConstraintError.
func (s *UserService) Register(ctx context.Context, name, username, password string) (*domain.UserDetails, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, name, username, string(hash))
	if err != nil {
		return nil, "", err
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

	s.logger.Info().Str("user_id", details.ID).Msg("user registered")
	return &details, cookie, nil
}
