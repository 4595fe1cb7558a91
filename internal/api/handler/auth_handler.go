package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/api/metrics"
	"github.com/taskboard/kanban-api/internal/api/middleware"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	validate    *schemaValidator
	cookieTTL   time.Duration
}

func NewAuthHandler(authService ports.AuthService, validate *schemaValidator, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, validate: validate, cookieTTL: cookieTTL}
}

type loginRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// Login authenticates the submitted credentials and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  map[string]any
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := h.validate.bind(c, &req); err != nil {
		return err
	}

	user, cookie, err := h.authService.Login(c.Request().Context(), *req.Username, *req.Password)
	if err != nil {
		return err
	}

	metrics.SessionsStartedTotal.Inc()
	setSessionCookie(c, cookie, h.cookieTTL)
	return respondEntity(c, http.StatusOK, "user", user)
}

// Logout tears down the caller's session. The cookie is expired even when
// the store teardown fails; repeating a logout is always a success.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  map[string]any
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var value string
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		value = cookie.Value
	}

	expireSessionCookie(c)
	if err := h.authService.Logout(c.Request().Context(), value); err != nil {
		return err
	}

	metrics.SessionsEndedTotal.Inc()
	return respondOK(c)
}
