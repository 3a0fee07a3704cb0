package handler

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

// UploadHandler streams stored CVs back to clients.
type UploadHandler struct {
	storage ports.ObjectStorage
}

func NewUploadHandler(storage ports.ObjectStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Serve handles GET /uploads/:name.
func (h *UploadHandler) Serve(c echo.Context) error {
	name := c.Param("name")
	rc, err := h.storage.Get(c.Request().Context(), name)
	if err != nil {
		return mapUploadErr(err)
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+name+"\"")
	return c.Stream(http.StatusOK, contentType, rc)
}

func mapUploadErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound("File")
	}
	return err
}
