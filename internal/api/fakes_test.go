package api

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*domain.User{}} }

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) Insert(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return domain.ErrDuplicateIdentity
	}
	cp := *u
	m.users[u.Email] = &cp
	return nil
}

// memCatalog keeps records in insertion order; List returns newest first.
type memCatalog[T any] struct {
	mu    sync.Mutex
	items []T
}

func recordID[T any](rec *T) string {
	return any(rec).(domain.Record).RecordID()
}

func (m *memCatalog[T]) List(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.items)
	slices.Reverse(out)
	return out, nil
}

func (m *memCatalog[T]) index(id string) int {
	for i := range m.items {
		if recordID(&m.items[i]) == id {
			return i
		}
	}
	return -1
}

func (m *memCatalog[T]) Get(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	rec := m.items[i]
	return &rec, nil
}

func (m *memCatalog[T]) Create(_ context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *rec)
	return nil
}

func (m *memCatalog[T]) Update(_ context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(recordID(rec))
	if i < 0 {
		return domain.ErrNotFound
	}
	m.items[i] = *rec
	return nil
}

func (m *memCatalog[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	m.items = slices.Delete(m.items, i, i+1)
	return nil
}

type memTeams struct {
	memCatalog[domain.Team]
}

func (m *memTeams) GameTypes(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]struct{}{}
	var out []string
	for _, t := range m.items {
		if _, ok := seen[t.GameType]; ok || t.GameType == "" {
			continue
		}
		seen[t.GameType] = struct{}{}
		out = append(out, t.GameType)
	}
	sort.Strings(out)
	return out, nil
}

type memApplications struct {
	mu   sync.Mutex
	apps map[string]domain.Application
}

func (m *memApplications) List(context.Context) ([]domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Application, 0, len(m.apps))
	for _, a := range m.apps {
		out = append(out, a)
	}
	return out, nil
}

func (m *memApplications) Get(_ context.Context, id string) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (m *memApplications) Create(_ context.Context, app *domain.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.apps == nil {
		m.apps = map[string]domain.Application{}
	}
	m.apps[app.ID] = *app
	return nil
}

func (m *memApplications) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	m.apps[id] = a
	return nil
}

func (m *memApplications) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.apps[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.apps, id)
	return nil
}

type memContacts struct {
	mu   sync.Mutex
	msgs []domain.ContactMessage
}

func (m *memContacts) List(context.Context) ([]domain.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.msgs), nil
}

func (m *memContacts) Create(_ context.Context, msg *domain.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, *msg)
	return nil
}

func (m *memContacts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.msgs {
		if m.msgs[i].ID == id {
			m.msgs = slices.Delete(m.msgs, i, i+1)
			return nil
		}
	}
	return domain.ErrNotFound
}
