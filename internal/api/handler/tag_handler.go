package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/kanban-api/internal/api/metrics"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

type TagHandler struct {
	tagService ports.TagService
	validate   *schemaValidator
}

func NewTagHandler(tagService ports.TagService, validate *schemaValidator) *TagHandler {
	return &TagHandler{tagService: tagService, validate: validate}
}

type createTagRequest struct {
	UserID *string `json:"userId" validate:"required,uuid4"`
	CardID *string `json:"cardId" validate:"required,uuid4"`
	Label  *string `json:"label" validate:"required"`
	Color  *string `json:"color" validate:"required"`
}

type addCardRequest struct {
	CardID *string `json:"cardId" validate:"required,uuid4"`
}

func (h *TagHandler) Create(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req createTagRequest
	if err := h.validate.bind(c, &req); err != nil {
		return err
	}

	tag, err := h.tagService.Create(c.Request().Context(), user.ID, *req.UserID, *req.CardID, *req.Label, *req.Color)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("tag", "create").Inc()
	return respondEntity(c, http.StatusCreated, "tag", tag)
}

func (h *TagHandler) ListByUserID(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	tags, err := h.tagService.ListByUserID(c.Request().Context(), user.ID, c.Param("userId"))
	if err != nil {
		return err
	}
	return respondEntity(c, http.StatusOK, "tags", tags)
}

// AddCard attaches an existing card to the tag.
func (h *TagHandler) AddCard(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	var req addCardRequest
	if err := h.validate.bind(c, &req); err != nil {
		return err
	}

	tag, err := h.tagService.AddCard(c.Request().Context(), user.ID, c.Param("tagId"), *req.CardID)
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("tag", "update").Inc()
	return respondEntity(c, http.StatusOK, "tag", tag)
}

// Delete is idempotent: deleting an absent tag still succeeds.
func (h *TagHandler) Delete(c echo.Context) error {
	user, err := sessionUser(c)
	if err != nil {
		return err
	}

	if err := h.tagService.Delete(c.Request().Context(), user.ID, c.Param("tagId")); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("tag", "delete").Inc()
	return respondOK(c)
}
