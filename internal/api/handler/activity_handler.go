package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/api/metrics"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

type ActivityHandler struct {
	activityService ports.ActivityService
	validate        *schemaValidator
}

func NewActivityHandler(activityService ports.ActivityService, validate *schemaValidator) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, validate: validate}
}

type createActivityRequest struct {
	UserID      *string `json:"userId" validate:"required,uuid4"`
	CardID      *string `json:"cardId" validate:"required,uuid4"`
	Type        *string `json:"type" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (h *ActivityHandler) Create(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req createActivityRequest
	if err := h.validate.bind(c, &req); err != nil {
		return err
	}

	activity, err := h.activityService.Create(c.Request().Context(), user.ID, *req.UserID, *req.CardID, *req.Type, *req.Description)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("activity", "create").Inc()
	return respondEntity(c, http.StatusCreated, "activity", activity)
}

func (h *ActivityHandler) ListByCardID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	activities, err := h.activityService.ListByCardID(c.Request().Context(), user.ID, c.Param("cardId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "activities", activities)
}
