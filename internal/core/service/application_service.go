package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

const (
	// DefaultMaxUploadBytes caps a single CV upload.
	DefaultMaxUploadBytes int64 = 5 << 20

	// UploadURLPrefix is the public path stored in Application.CVURL.
	UploadURLPrefix = "/uploads/"
)

var allowedCVExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ApplicationService handles hiring applications and their CV uploads.
type ApplicationService struct {
	repo     ports.ApplicationRepository
	storage  ports.ObjectStorage
	maxBytes int64
	log      zerolog.Logger
	now      func() time.Time
}

func NewApplicationService(repo ports.ApplicationRepository, storage ports.ObjectStorage, maxBytes int64, log zerolog.Logger) *ApplicationService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &ApplicationService{
		repo:     repo,
		storage:  storage,
		maxBytes: maxBytes,
		log:      log,
		now:      time.Now,
	}
}

// Submit stores the optional CV first and then the application row. If the
// row insert fails the uploaded object is removed again.
func (s *ApplicationService) Submit(ctx context.Context, app *domain.Application, cv *ports.UploadInput) (string, error) {
	if err := app.Validate(); err != nil {
		return "", err
	}

	var key string
	if cv != nil {
		ext, contentType, err := s.checkUpload(cv)
		if err != nil {
			return "", err
		}
		key = "cv-" + uuid.NewString() + ext
		if err := s.storage.Put(ctx, key, cv.Body, cv.Size, contentType); err != nil {
			return "", fmt.Errorf("store cv: %w", err)
		}
		app.CVURL = UploadURLPrefix + key
	}

	app.ID = uuid.NewString()
	app.Email = strings.TrimSpace(app.Email)
	app.Status = domain.ApplicationPending
	app.DateSubmitted = s.now().UTC()

	if err := s.repo.Create(ctx, app); err != nil {
		if key != "" {
			s.removeUpload(ctx, key)
		}
		return "", fmt.Errorf("create application: %w", err)
	}

	s.log.Info().Str("application_id", app.ID).Bool("has_cv", key != "").Msg("application submitted")
	return app.ID, nil
}

func (s *ApplicationService) List(ctx context.Context) ([]domain.Application, error) {
	apps, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	if !status.Valid() {
		return domain.Invalid("Invalid status")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return mapNotFound(err, "Application")
	}
	s.log.Info().Str("application_id", id).Str("status", string(status)).Msg("application status updated")
	return nil
}

// Delete removes the application and, best effort, its CV.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return mapNotFound(err, "Application")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "Application")
	}
	if key, ok := strings.CutPrefix(app.CVURL, UploadURLPrefix); ok && key != "" {
		s.removeUpload(ctx, key)
	}
	s.log.Info().Str("application_id", id).Msg("application deleted")
	return nil
}

func (s *ApplicationService) checkUpload(cv *ports.UploadInput) (ext, contentType string, err error) {
	ext = strings.ToLower(filepath.Ext(cv.Filename))
	contentType, ok := allowedCVExtensions[ext]
	if !ok {
		return "", "", domain.ErrUnsupportedMediaType
	}
	if cv.Size > s.maxBytes {
		return "", "", domain.ErrFileTooLarge
	}
	return ext, contentType, nil
}

func (s *ApplicationService) removeUpload(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to remove uploaded cv")
	}
}

func mapNotFound(err error, resource string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(resource)
	}
	return err
}
