package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
	dbredis "github.com/arcadia-esports/cms-api/internal/infrastructure/db/redis"
)

// Limiter is satisfied by the Redis-backed limiter with local fallback.
type Limiter interface {
	Allow(ctx context.Context, key string) dbredis.Decision
}

// RateLimit throttles requests per client IP within scope. Rejected requests
// end with domain.ErrRateLimited.
func RateLimit(l Limiter, scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := l.Allow(c.Request().Context(), scope+":"+c.RealIP())

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(d.ResetAfter).Unix(), 10))

			if !d.Allowed {
				retry := int(d.RetryAfter.Seconds())
				if retry < 1 {
					retry = 1
				}
				h.Set("Retry-After", fmt.Sprint(retry))
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}
