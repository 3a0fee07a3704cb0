package ports

import (
	"context"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type ContactRepository interface {
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Create(ctx context.Context, msg *domain.ContactMessage) error
	Delete(ctx context.Context, id string) error
}

type ContactService interface {
	Send(ctx context.Context, msg *domain.ContactMessage) (string, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}
