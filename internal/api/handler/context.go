package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// errorResponse documents the error envelope rendered by the central handler.
type errorResponse struct {
	Error string `json:"error"`
}

// bindJSON decodes the body and runs struct validation. A malformed body is a
// validation error like any other bad input.
func bindJSON(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return domain.Invalid("Invalid request body")
	}
	return c.Validate(req)
}

func created(c echo.Context, label, id string) error {
	return c.JSON(http.StatusCreated, createdResponse{Message: label + " created successfully", ID: id})
}

func done(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}
