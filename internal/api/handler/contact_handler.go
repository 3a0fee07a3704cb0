package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/api/metrics"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

type ContactHandler struct {
	svc ports.ContactService
}

func NewContactHandler(svc ports.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"max=200"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Subject string `json:"subject" validate:"max=300"`
	Message string `json:"message" validate:"max=5000"`
}

// List returns every contact message, newest first.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ContactMessage
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	msgs, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}

// Send stores a message from the public contact form.
//
// @Summary      Send a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req contactRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	id, err := h.svc.Send(c.Request().Context(), &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{Message: "Message sent successfully", ID: id})
}

// Delete removes a contact message.
//
// @Summary      Delete contact message
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contact/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return done(c, "Message deleted successfully")
}
