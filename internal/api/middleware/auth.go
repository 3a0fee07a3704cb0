package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-esports/cms-api/internal/api/metrics"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

const identityKey = "identity"

// Authenticate verifies the bearer token and stores the resulting identity on
// the echo context. The identity lives only as long as the request.
//
// A missing header or an empty token is ErrUnauthenticated (401). Anything
// else that fails to verify, including a non-Bearer scheme, is
// ErrInvalidToken (403).
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return err
			}

			identity, err := verifier.Verify(token)
			if token == "" || err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidToken
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// bearerToken returns the second space-separated part of the header, or
// ErrUnauthenticated when there is none. A non-Bearer scheme yields an empty
// token, which the caller treats as invalid.
func bearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return "", domain.ErrUnauthenticated
	}
	if !strings.EqualFold(parts[0], "bearer") {
		return "", nil
	}
	return parts[1], nil
}

// IdentityFrom returns the identity stored by Authenticate.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	id, ok := c.Get(identityKey).(*domain.Identity)
	return id, ok && id != nil
}
