package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *Database) *ApplicationRepository {
	return &ApplicationRepository{db: db.DB}
}

func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	query := `
		SELECT id, name, email, cv_url, message, status, date_submitted
		FROM hiring_applications
		ORDER BY date_submitted DESC`

	var apps []domain.Application
	if err := r.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, domain.StoreFailure("list applications", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) Get(ctx context.Context, id string) (*domain.Application, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	query := `
		SELECT id, name, email, cv_url, message, status, date_submitted
		FROM hiring_applications
		WHERE id = $1`

	var app domain.Application
	err := r.db.GetContext(ctx, &app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.StoreFailure("get application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO hiring_applications (id, name, email, cv_url, message, status, date_submitted)
		VALUES (:id, :name, :email, :cv_url, :message, :status, :date_submitted)`

	if _, err := r.db.NamedExecContext(ctx, query, app); err != nil {
		return domain.StoreFailure("insert application", err)
	}
	return nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `UPDATE hiring_applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return domain.StoreFailure("update application status", err)
	}
	return expectOneRow(res, "update application status")
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM hiring_applications WHERE id = $1`, id)
	if err != nil {
		return domain.StoreFailure("delete application", err)
	}
	return expectOneRow(res, "delete application")
}

type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *Database) *ContactRepository {
	return &ContactRepository{db: db.DB}
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, date_sent
		FROM contact_messages
		ORDER BY date_sent DESC`

	var msgs []domain.ContactMessage
	if err := r.db.SelectContext(ctx, &msgs, query); err != nil {
		return nil, domain.StoreFailure("list contact messages", err)
	}
	return msgs, nil
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, date_sent)
		VALUES (:id, :name, :email, :subject, :message, :date_sent)`

	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return domain.StoreFailure("insert contact message", err)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return domain.StoreFailure("delete contact message", err)
	}
	return expectOneRow(res, "delete contact message")
}
