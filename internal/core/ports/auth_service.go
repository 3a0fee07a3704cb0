package ports

import (
	"context"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// AuthResult is returned by a successful register or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Provision creates an account with an explicit role. It is only reachable
	// from the CLI; the HTTP surface always registers plain users.
	Provision(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
}
