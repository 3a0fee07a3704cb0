package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

// recordPtr constrains P to be *T implementing domain.Record.
type recordPtr[T any] interface {
	*T
	domain.Record
}

// CatalogService implements the CRUD use cases shared by teams, events,
// staff, leadership and sponsors.
type CatalogService[T any, P recordPtr[T]] struct {
	repo     ports.CatalogRepository[T]
	resource string
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// NewCatalogService builds a service; resource is the display name used in
// not-found messages ("Team", "Sponsor", ...).
func NewCatalogService[T any, P recordPtr[T]](repo ports.CatalogRepository[T], resource string, log zerolog.Logger) *CatalogService[T, P] {
	return &CatalogService[T, P]{
		repo:     repo,
		resource: resource,
		log:      log.With().Str("resource", resource).Logger(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *CatalogService[T, P]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.resource, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *CatalogService[T, P]) Get(ctx context.Context, id string) (*T, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return rec, nil
}

// Create validates rec, assigns a fresh id and creation time, and stores it.
func (s *CatalogService[T, P]) Create(ctx context.Context, rec *T) (string, error) {
	p := P(rec)
	if err := p.Validate(); err != nil {
		return "", err
	}
	p.Assign(s.newID(), s.now().UTC())

	if err := s.repo.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("create %s: %w", s.resource, err)
	}
	s.log.Info().Str("id", p.RecordID()).Msg("record created")
	return p.RecordID(), nil
}

// Update replaces every mutable field of the record identified by id. The
// creation timestamp is left untouched by the repositories.
func (s *CatalogService[T, P]) Update(ctx context.Context, id string, rec *T) error {
	p := P(rec)
	if err := p.Validate(); err != nil {
		return err
	}
	p.Assign(id, time.Time{})

	if err := s.repo.Update(ctx, rec); err != nil {
		return s.mapErr(err)
	}
	s.log.Info().Str("id", id).Msg("record updated")
	return nil
}

func (s *CatalogService[T, P]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapErr(err)
	}
	s.log.Info().Str("id", id).Msg("record deleted")
	return nil
}

func (s *CatalogService[T, P]) mapErr(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound(s.resource)
	}
	return err
}

// TeamService extends the catalog with the distinct game types in use.
type TeamService struct {
	*CatalogService[domain.Team, *domain.Team]
	teams ports.TeamRepository
}

func NewTeamService(repo ports.TeamRepository, log zerolog.Logger) *TeamService {
	return &TeamService{
		CatalogService: NewCatalogService[domain.Team, *domain.Team](repo, "Team", log),
		teams:          repo,
	}
}

func (s *TeamService) GameTypes(ctx context.Context) ([]string, error) {
	types, err := s.teams.GameTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list game types: %w", err)
	}
	if types == nil {
		types = []string{}
	}
	return types, nil
}
