package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// successEnvelope is the uniform wrapper for successful responses. Deletes
// carry no data; everything else nests the entity (or collection) under its
// name.
type successEnvelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
}

func respondEntity(c echo.Context, status int, name string, entity any) error {
	return c.JSON(status, successEnvelope{
		Success: true,
		Data:    map[string]any{name: entity},
	})
}

func respondOK(c echo.Context) error {
	return c.JSON(http.StatusOK, successEnvelope{Success: true})
}
