package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type stubContactRepo struct {
	msgs map[string]domain.ContactMessage
}

func (r *stubContactRepo) List(context.Context) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	for _, m := range r.msgs {
		out = append(out, m)
	}
	return out, nil
}

func (r *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) error {
	r.msgs[m.ID] = *m
	return nil
}

func (r *stubContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.msgs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.msgs, id)
	return nil
}

func TestContactService_SendListDelete(t *testing.T) {
	repo := &stubContactRepo{msgs: make(map[string]domain.ContactMessage)}
	svc := NewContactService(repo, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Send(ctx, &domain.ContactMessage{Name: "A", Email: "a@example.com"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	id, err := svc.Send(ctx, &domain.ContactMessage{Name: "A", Email: "a@example.com", Message: "hello"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if repo.msgs[id].DateSent.IsZero() {
		t.Fatalf("expected date_sent to be set")
	}

	msgs, err := svc.List(ctx)
	if err != nil || len(msgs) != 1 {
		t.Fatalf("List: %v %v", msgs, err)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
