package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/api/metrics"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

type ColumnHandler struct {
	columnService ports.ColumnService
	validate      *schemaValidator
}

func NewColumnHandler(columnService ports.ColumnService, validate *schemaValidator) *ColumnHandler {
	return &ColumnHandler{columnService: columnService, validate: validate}
}

type createColumnRequest struct {
	UserID  *string `json:"userId" validate:"required,uuid4"`
	BoardID *string `json:"boardId" validate:"required"`
	Label   *string `json:"label"`
}

type updateColumnRequest struct {
	Label *string `json:"label" validate:"required"`
}

// Create makes a column on a board. A missing label falls back to the
// default column label.
func (h *ColumnHandler) Create(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req createColumnRequest
	if err := h.validate.bind(c, &req); err != nil {
		return err
	}

	label := ""
	if req.Label != nil {
		label = *req.Label
	}

	column, err := h.columnService.Create(c.Request().Context(), user.ID, *req.UserID, *req.BoardID, label)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("column", "create").Inc()
	return respondEntity(c, http.StatusCreated, "column", column)
}

func (h *ColumnHandler) GetByID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	column, err := h.columnService.GetByID(c.Request().Context(), user.ID, c.Param("columnId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "column", column)
}

func (h *ColumnHandler) ListByUserID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	columns, err := h.columnService.ListByUserID(c.Request().Context(), user.ID, c.Param("userId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "columns", columns)
}

func (h *ColumnHandler) ListByBoardID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	columns, err := h.columnService.ListByBoardID(c.Request().Context(), user.ID, c.Param("boardId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "columns", columns)
}

// Update accepts a closed shape: only the label may change.
func (h *ColumnHandler) Update(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req updateColumnRequest
	if err := h.validate.bindStrict(c, &req); err != nil {
		return err
	}

	column, err := h.columnService.Update(c.Request().Context(), user.ID, c.Param("columnId"), *req.Label)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("column", "update").Inc()
	return respondEntity(c, http.StatusOK, "column", column)
}

// Delete is idempotent: deleting an absent column still succeeds.
func (h *ColumnHandler) Delete(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	if err := h.columnService.Delete(c.Request().Context(), user.ID, c.Param("columnId")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("column", "delete").Inc()
	return respondOK(c)
}
