package ports

import (
	"context"
	"io"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// UploadInput is a CV attached to an application.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ApplicationRepository interface {
	List(ctx context.Context) ([]domain.Application, error)
	Get(ctx context.Context, id string) (*domain.Application, error)
	Create(ctx context.Context, app *domain.Application) error
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id string) error
}

type ApplicationService interface {
	Submit(ctx context.Context, app *domain.Application, cv *UploadInput) (string, error)
	List(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id string) error
}
