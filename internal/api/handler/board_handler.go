package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/api/metrics"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

type BoardHandler struct {
	boardService ports.BoardService
	validate     *schemaValidator
}

func NewBoardHandler(boardService ports.BoardService, validate *schemaValidator) *BoardHandler {
	return &BoardHandler{boardService: boardService, validate: validate}
}

type createBoardRequest struct {
	UserID *string `json:"userId" validate:"required,uuid4"`
	Label  *string `json:"label" validate:"required"`
}

type updateBoardRequest struct {
	Label *string `json:"label" validate:"required"`
}

func (h *BoardHandler) Create(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req createBoardRequest
	if err := h.validate.bind(c, &req); err != nil {
		return err
	}

	board, err := h.boardService.Create(c.Request().Context(), user.ID, *req.UserID, *req.Label)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("board", "create").Inc()
	return respondEntity(c, http.StatusCreated, "board", board)
}

func (h *BoardHandler) GetByID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	board, err := h.boardService.GetByID(c.Request().Context(), user.ID, c.Param("boardId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "board", board)
}

func (h *BoardHandler) ListByUserID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	boards, err := h.boardService.ListByUserID(c.Request().Context(), user.ID, c.Param("userId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "boards", boards)
}

// Update accepts a closed shape: only the label may change.
func (h *BoardHandler) Update(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req updateBoardRequest
	if err := h.validate.bindStrict(c, &req); err != nil {
		return err
	}

	board, err := h.boardService.Update(c.Request().Context(), user.ID, c.Param("boardId"), *req.Label)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("board", "update").Inc()
	return respondEntity(c, http.StatusOK, "board", board)
}

// Delete is idempotent: deleting an absent board still succeeds.
func (h *BoardHandler) Delete(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	if err := h.boardService.Delete(c.Request().Context(), user.ID, c.Param("boardId")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("board", "delete").Inc()
	return respondOK(c)
}
