package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/api/middleware"
	"github.com/taskboard/kanban-api/internal/core/domain"
)

// sessionUser extracts the identity injected by the session middleware.
// Its absence means no session was established for this request.
func sessionUser(c echo.Context) (domain.UserDetails, error) {
	user, ok := c.Get(middleware.UserContextKey).(domain.UserDetails)
	if !ok {
		return domain.UserDetails{}, domain.ErrLoginRequired
	}
	return user, nil
}

// setSessionCookie attaches the signed session cookie to the response.
func setSessionCookie(c echo.Context, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// expireSessionCookie tells the client to drop the session cookie.
func expireSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
