package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/api/metrics"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

type CardHandler struct {
	cardService ports.CardService
	validate    *schemaValidator
}

func NewCardHandler(cardService ports.CardService, validate *schemaValidator) *CardHandler {
	return &CardHandler{cardService: cardService, validate: validate}
}

type createCardRequest struct {
	UserID   *string `json:"userId" validate:"required"`
	ColumnID *string `json:"columnId" validate:"required"`
	Brief    *string `json:"brief" validate:"required"`
	Body     *string `json:"body"`
	Color    *string `json:"color"`
}

type updateCardRequest struct {
	ColumnID *string `json:"columnId" validate:"omitempty,uuid4"`
	Brief    *string `json:"brief"`
	Body     *string `json:"body"`
	Color    *string `json:"color"`
}

func (h *CardHandler) Create(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req createCardRequest
	if err := h.validate.bind(c, &req); err != nil {
		return err
	}

	card, err := h.cardService.Create(c.Request().Context(), user.ID, ports.CreateCardInput{
		UserID:   *req.UserID,
		ColumnID: *req.ColumnID,
		Brief:    *req.Brief,
		Body:     req.Body,
		Color:    req.Color,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("card", "create").Inc()
	return respondEntity(c, http.StatusCreated, "card", card)
}

func (h *CardHandler) GetByID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	card, err := h.cardService.GetByID(c.Request().Context(), user.ID, c.Param("cardId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "card", card)
}

func (h *CardHandler) ListByColumnID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	cards, err := h.cardService.ListByColumnID(c.Request().Context(), user.ID, c.Param("columnId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "cards", cards)
}

// Update accepts a closed shape of optional fields; absent fields keep
// their stored value.
func (h *CardHandler) Update(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req updateCardRequest
	if err := h.validate.bindStrict(c, &req); err != nil {
		return err
	}

	card, err := h.cardService.Update(c.Request().Context(), user.ID, c.Param("cardId"), ports.UpdateCardInput{
		ColumnID: req.ColumnID,
		Brief:    req.Brief,
		Body:     req.Body,
		Color:    req.Color,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("card", "update").Inc()
	return respondEntity(c, http.StatusOK, "card", card)
}

// Delete is idempotent: deleting an absent card still succeeds.
func (h *CardHandler) Delete(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	if err := h.cardService.Delete(c.Request().Context(), user.ID, c.Param("cardId")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("card", "delete").Inc()
	return respondOK(c)
}

// DeleteByColumnID removes every card on the column in one operation.
func (h *CardHandler) DeleteByColumnID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	if err := h.cardService.DeleteByColumnID(c.Request().Context(), user.ID, c.Param("columnId")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("card", "delete").Inc()
	return respondOK(c)
}
