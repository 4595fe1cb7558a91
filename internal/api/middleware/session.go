package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// SessionCookieName is the cookie carrying the signed session id.
const SessionCookieName = "taskboard.sid"

// UserContextKey is where the authenticated identity is stored on the echo
// context for downstream handlers.
const UserContextKey = "sessionUser"

// Session resolves the session cookie to an identity and injects it into the
// request context. Requests without a resolvable session are rejected before
// any input parsing happens.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrLoginRequired
			}

			user, err := auth.SessionFromCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				return domain.ErrLoginRequired
			}

			c.Set(UserContextKey, *user)
			return next(c)
		}
	}
}
