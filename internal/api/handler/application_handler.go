package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/api/metrics"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

// cvField is the multipart field carrying the CV.
const cvField = "cv"

type ApplicationHandler struct {
	svc ports.ApplicationService
}

func NewApplicationHandler(svc ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type applicationRequest struct {
	Name    string `json:"name"    validate:"max=200"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Message string `json:"message" validate:"max=5000"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
}

// List returns every application, newest first.
//
// @Summary      List hiring applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Application
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	apps, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// Submit stores an application sent as multipart/form-data with an optional
// cv file. A plain JSON body is accepted for applications without a CV.
//
// @Summary      Submit a hiring application
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        name     formData  string  true   "Applicant name"
// @Param        email    formData  string  true   "Applicant email"
// @Param        message  formData  string  false  "Cover message"
// @Param        cv       formData  file    false  "CV (.pdf, .doc, .docx, max 5MB)"
// @Success      201  {object}  createdResponse
// @Failure      400  {object}  errorResponse
// @Failure      413  {object}  errorResponse
// @Failure      415  {object}  errorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var req applicationRequest
		if err := bindJSON(c, &req); err != nil {
			return err
		}
		return h.submit(c, &domain.Application{Name: req.Name, Email: req.Email, Message: req.Message}, nil)
	}

	req := applicationRequest{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	app := &domain.Application{Name: req.Name, Email: req.Email, Message: req.Message}

	fh, err := c.FormFile(cvField)
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return h.submit(c, app, nil)
	case err != nil:
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return domain.Invalid("Invalid multipart form")
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	return h.submit(c, app, &ports.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
}

func (h *ApplicationHandler) submit(c echo.Context, app *domain.Application, upload *ports.UploadInput) error {
	id, err := h.svc.Submit(c.Request().Context(), app, upload)
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.WithLabelValues(strconv.FormatBool(upload != nil)).Inc()
	if upload != nil {
		metrics.UploadBytes.Observe(float64(upload.Size))
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "Application submitted successfully", ID: id})
}

// UpdateStatus moves an application through review.
//
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Application ID"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ApplicationStatus(req.Status)); err != nil {
		return err
	}
	return done(c, "Application status updated successfully")
}

// Delete removes an application and its CV.
//
// @Summary      Delete application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return done(c, "Application deleted successfully")
}
