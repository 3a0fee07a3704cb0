package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
)

// MinBcryptCost is the lowest work factor accepted for password hashes.
const MinBcryptCost = 10

// AuthService implements registration, login and CLI provisioning.
type AuthService struct {
	repo      ports.CredentialRepository
	tokens    ports.TokenIssuer
	cost      int
	dummyHash []byte
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(repo ports.CredentialRepository, tokens ports.TokenIssuer, cost int, log zerolog.Logger) (*AuthService, error) {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	// Unknown emails are compared against this hash so that the miss costs
	// the same as a wrong password.
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}
	return &AuthService{
		repo:      repo,
		tokens:    tokens,
		cost:      cost,
		dummyHash: dummy,
		log:       log,
		now:       time.Now,
	}, nil
}

// Register creates a plain "user" account and returns a session token for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	user, err := s.create(ctx, name, email, password, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Provision creates an account with an explicit role.
func (s *AuthService) Provision(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.Invalid("role must be one of: admin, manager, user")
	}
	user, err := s.create(ctx, name, email, password, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("user provisioned")
	return user, nil
}

// Login verifies credentials. Unknown email and wrong password share a single
// failure path and both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.Invalid("Email and password are required")
	}

	user, err := s.authenticate(ctx, domain.NormalizeEmail(email), password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	hash := s.dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	matched := bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
	if user == nil || !matched {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) create(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = domain.NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, domain.Invalid("All fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, domain.Invalid("Password must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
