package ports

import "github.com/arcadia-esports/cms-api/internal/core/domain"

// TokenIssuer mints signed bearer tokens for a verified user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier decodes a bearer token. Any failure is reported as
// domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}
