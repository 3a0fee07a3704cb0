package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type stubTeamRepo struct {
	teams map[string]domain.Team
}

func newStubTeamRepo() *stubTeamRepo {
	return &stubTeamRepo{teams: make(map[string]domain.Team)}
}

func (r *stubTeamRepo) List(context.Context) ([]domain.Team, error) {
	var out []domain.Team
	for _, t := range r.teams {
		out = append(out, t)
	}
	return out, nil
}

func (r *stubTeamRepo) Get(_ context.Context, id string) (*domain.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *stubTeamRepo) Create(_ context.Context, t *domain.Team) error {
	r.teams[t.ID] = *t
	return nil
}

func (r *stubTeamRepo) Update(_ context.Context, t *domain.Team) error {
	old, ok := r.teams[t.ID]
	if !ok {
		return domain.ErrNotFound
	}
	t.CreatedAt = old.CreatedAt
	r.teams[t.ID] = *t
	return nil
}

func (r *stubTeamRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.teams[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *stubTeamRepo) GameTypes(context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, t := range r.teams {
		if t.GameType != "" && !seen[t.GameType] {
			seen[t.GameType] = true
			out = append(out, t.GameType)
		}
	}
	sort.Strings(out)
	return out, nil
}

func TestCatalogService_CreateAssignsIDAndTimestamp(t *testing.T) {
	repo := newStubTeamRepo()
	svc := NewTeamService(repo, zerolog.Nop())
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return now }

	id, err := svc.Create(context.Background(), &domain.Team{Name: "Valorant Main"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected id")
	}
	stored := repo.teams[id]
	if !stored.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at %v", stored.CreatedAt)
	}
	if stored.Gender != domain.GenderMixed {
		t.Fatalf("expected default gender mixed, got %q", stored.Gender)
	}
}

func TestCatalogService_CreateRequiresName(t *testing.T) {
	repo := newStubTeamRepo()
	svc := NewTeamService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.Team{}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &domain.Team{Name: "x", Gender: "other"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for gender, got %v", err)
	}
	if len(repo.teams) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestCatalogService_UpdateKeepsCreatedAt(t *testing.T) {
	repo := newStubTeamRepo()
	svc := NewTeamService(repo, zerolog.Nop())
	id, _ := svc.Create(context.Background(), &domain.Team{Name: "A"})
	created := repo.teams[id].CreatedAt

	if err := svc.Update(context.Background(), id, &domain.Team{Name: "B", GameType: "valorant"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got := repo.teams[id]
	if got.Name != "B" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected record after update: %+v", got)
	}
}

func TestCatalogService_NotFound(t *testing.T) {
	svc := NewTeamService(newStubTeamRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), "missing")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Error() != "Team not found" {
		t.Fatalf("expected Team not found, got %v", err)
	}
	if err := svc.Update(context.Background(), "missing", &domain.Team{Name: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}

func TestCatalogService_ListEmptyIsNotNil(t *testing.T) {
	svc := NewCatalogService[domain.Sponsor](&stubSponsorRepo{}, "Sponsor", zerolog.Nop())
	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestTeamService_GameTypes(t *testing.T) {
	repo := newStubTeamRepo()
	svc := NewTeamService(repo, zerolog.Nop())
	for _, gt := range []string{"valorant", "", "cs2", "valorant"} {
		if _, err := svc.Create(context.Background(), &domain.Team{Name: "t", GameType: gt}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	types, err := svc.GameTypes(context.Background())
	if err != nil {
		t.Fatalf("GameTypes: %v", err)
	}
	if len(types) != 2 || types[0] != "cs2" || types[1] != "valorant" {
		t.Fatalf("unexpected game types %v", types)
	}
}

type stubSponsorRepo struct{}

func (stubSponsorRepo) List(context.Context) ([]domain.Sponsor, error) { return nil, nil }
func (stubSponsorRepo) Get(context.Context, string) (*domain.Sponsor, error) { return nil, domain.ErrNotFound }
func (stubSponsorRepo) Create(context.Context, *domain.Sponsor) error { return nil }
func (stubSponsorRepo) Update(context.Context, *domain.Sponsor) error { return domain.ErrNotFound }
func (stubSponsorRepo) Delete(context.Context, string) error { return domain.ErrNotFound }
