package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

// UserRepository stores accounts in the users table. Emails are stored
// normalized and matched case-insensitively.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *Database) *UserRepository {
	return &UserRepository{db: db.DB}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.StoreFailure("find user by email", err)
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateIdentity
	}
	if err != nil {
		return domain.StoreFailure("insert user", err)
	}
	return nil
}
