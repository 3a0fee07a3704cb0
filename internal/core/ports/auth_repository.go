package ports

import (
	"context"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// CredentialRepository persists user accounts.
//
// FindByEmail returns (nil, nil) when no account matches. Both methods wrap
// connection failures in domain.ErrStoreUnavailable; Insert returns
// domain.ErrDuplicateIdentity on a unique violation of the email.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
}
