package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/api/metrics"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

// catalogRequest is a JSON body that converts into a domain entity.
type catalogRequest[T any] interface {
	toDomain() (*T, error)
}

// CatalogHandler serves the CRUD routes of one content collection.
// label names a single record in response messages ("Team", "Staff member").
type CatalogHandler[T any, R catalogRequest[T]] struct {
	svc      ports.CatalogService[T]
	resource string
	label    string
}

func NewCatalogHandler[T any, R catalogRequest[T]](svc ports.CatalogService[T], resource, label string) *CatalogHandler[T, R] {
	return &CatalogHandler[T, R]{svc: svc, resource: resource, label: label}
}

// List returns every record, newest first.
func (h *CatalogHandler[T, R]) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler[T, R]) Get(c echo.Context) error {
	item, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler[T, R]) Create(c echo.Context) error {
	rec, err := h.decode(c)
	if err != nil {
		return err
	}
	id, err := h.svc.Create(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	metrics.ContentMutationsTotal.WithLabelValues(h.resource, "create").Inc()
	return created(c, h.label, id)
}

func (h *CatalogHandler[T, R]) Update(c echo.Context) error {
	rec, err := h.decode(c)
	if err != nil {
		return err
	}
	if err := h.svc.Update(c.Request().Context(), c.Param("id"), rec); err != nil {
		return err
	}
	metrics.ContentMutationsTotal.WithLabelValues(h.resource, "update").Inc()
	return done(c, h.label+" updated successfully")
}

func (h *CatalogHandler[T, R]) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentMutationsTotal.WithLabelValues(h.resource, "delete").Inc()
	return done(c, h.label+" deleted successfully")
}

func (h *CatalogHandler[T, R]) decode(c echo.Context) (*T, error) {
	var req R
	if err := bindJSON(c, &req); err != nil {
		return nil, err
	}
	return req.toDomain()
}

// TeamHandler adds the game-type listing to the team routes.
type TeamHandler struct {
	*CatalogHandler[domain.Team, TeamRequest]
	teams ports.TeamService
}

func NewTeamHandler(svc ports.TeamService) *TeamHandler {
	return &TeamHandler{
		CatalogHandler: NewCatalogHandler[domain.Team, TeamRequest](svc, "teams", "Team"),
		teams:          svc,
	}
}

// GameTypes lists the distinct game types used by existing teams.
//
// @Summary      List game types
// @Tags         teams
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  errorResponse
// @Router       /api/teams/game-types [get]
func (h *TeamHandler) GameTypes(c echo.Context) error {
	types, err := h.teams.GameTypes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, types)
}
