// Package postgres implements the repositories on PostgreSQL through sqlx
// and the pgx stdlib driver.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/arcadia-esports/cms-api/internal/infrastructure/config"
)

const uniqueViolation = "23505"

type Database struct {
	DB *sqlx.DB
}

// Connect opens the pool and pings it once.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*Database, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	d := &Database{DB: db}
	if err := d.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.DB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// validID reports whether id can be compared against a UUID column. Anything
// else cannot match a row, so callers answer with ErrNotFound without a
// round trip.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
