package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/api/metrics"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
	validate    *schemaValidator
	cookieTTL   time.Duration
}

func NewUserHandler(userService ports.UserService, validate *schemaValidator, cookieTTL time.Duration) *UserHandler {
	return &UserHandler{userService: userService, validate: validate, cookieTTL: cookieTTL}
}

type createUserRequest struct {
	Name     *string `json:"name" validate:"required"`
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required,password"`
}

// Create registers a new account and opens a session for it. The payload is
// a closed shape; unknown keys are rejected.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  map[string]any
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := h.validate.bindStrict(c, &req); err != nil {
		return err
	}

	user, cookie, err := h.userService.Register(c.Request().Context(), *req.Name, *req.Username, *req.Password)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "create").Inc()
	metrics.SessionsStartedTotal.Inc()
	setSessionCookie(c, cookie, h.cookieTTL)
	return respondEntity(c, http.StatusCreated, "user", user)
}

// FetchUser returns the identity bound to the caller's session.
//
// @Summary      Fetch the session user
// @Tags         users
// @Produce      json
// @Success      200   {object}  successEnvelope
// @Failure      401   {object}  map[string]any
// @Router       /api/users/fetch-user [get]
func (h *UserHandler) FetchUser(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "user", user)
}
