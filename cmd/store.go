package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arcadia-esports/cms-api/internal/api/handler"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/ports"
	"github.com/arcadia-esports/cms-api/internal/infrastructure/config"
	"github.com/arcadia-esports/cms-api/internal/infrastructure/db/mongo"
	"github.com/arcadia-esports/cms-api/internal/infrastructure/db/postgres"
)

// repositories is the persistence layer selected by DB_DRIVER.
type repositories struct {
	users        ports.CredentialRepository
	teams        ports.TeamRepository
	events       ports.CatalogRepository[domain.Event]
	staff        ports.CatalogRepository[domain.Member]
	leadership   ports.CatalogRepository[domain.Member]
	sponsors     ports.CatalogRepository[domain.Sponsor]
	applications ports.ApplicationRepository
	contact      ports.ContactRepository

	ping  handler.Check
	close func(ctx context.Context) error
}

func openRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		store, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
		return &repositories{
			users:        mongo.NewUserRepository(store),
			teams:        mongo.NewTeamRepository(store),
			events:       mongo.NewEventRepository(store),
			staff:        mongo.NewStaffRepository(store),
			leadership:   mongo.NewLeadershipRepository(store),
			sponsors:     mongo.NewSponsorRepository(store),
			applications: mongo.NewApplicationRepository(store),
			contact:      mongo.NewContactRepository(store),
			ping:         store.Ping,
			close:        store.Close,
		}, nil

	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		log.Info().Str("host", cfg.Postgres.Host).Str("database", cfg.Postgres.Name).Msg("connected to postgres")
		return &repositories{
			users:        postgres.NewUserRepository(db),
			teams:        postgres.NewTeamRepository(db),
			events:       postgres.NewEventRepository(db),
			staff:        postgres.NewStaffRepository(db),
			leadership:   postgres.NewLeadershipRepository(db),
			sponsors:     postgres.NewSponsorRepository(db),
			applications: postgres.NewApplicationRepository(db),
			contact:      postgres.NewContactRepository(db),
			ping:         db.Ping,
			close:        func(context.Context) error { return db.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
}
