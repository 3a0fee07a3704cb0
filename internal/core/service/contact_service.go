package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

type ContactService struct {
	repo ports.ContactRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewContactService(repo ports.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, log: log, now: time.Now}
}

func (s *ContactService) Send(ctx context.Context, msg *domain.ContactMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}
	msg.ID = uuid.NewString()
	msg.Email = strings.TrimSpace(msg.Email)
	msg.DateSent = s.now().UTC()

	if err := s.repo.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("create contact message: %w", err)
	}
	s.log.Info().Str("message_id", msg.ID).Msg("contact message received")
	return msg.ID, nil
}

func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	if msgs == nil {
		msgs = []domain.ContactMessage{}
	}
	return msgs, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err, "Message")
	}
	s.log.Info().Str("message_id", id).Msg("contact message deleted")
	return nil
}
