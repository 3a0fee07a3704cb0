package ports

import (
	"context"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// CatalogRepository is the persistence contract shared by the public content
// collections. Get, Update and Delete return domain.ErrNotFound for unknown ids.
type CatalogRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id string) error
}

// TeamRepository adds the game-type projection used by the roster filter.
type TeamRepository interface {
	CatalogRepository[domain.Team]
	GameTypes(ctx context.Context) ([]string, error)
}

// CatalogService is the use-case surface the content handlers depend on.
type CatalogService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, rec *T) (string, error)
	Update(ctx context.Context, id string, rec *T) error
	Delete(ctx context.Context, id string) error
}

type TeamService interface {
	CatalogService[domain.Team]
	GameTypes(ctx context.Context) ([]string, error)
}
