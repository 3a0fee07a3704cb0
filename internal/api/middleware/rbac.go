package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/api/metrics"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// RequireRoles admits the request only when the authenticated role is in
// allowed. It must run after Authenticate.
func RequireRoles(allowed domain.RoleSet) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if err := domain.Authorize(id.Role, allowed); err != nil {
				metrics.AuthorizationDenialsTotal.WithLabelValues(c.Path(), string(id.Role)).Inc()
				return err
			}
			return next(c)
		}
	}
}
