package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcadia-esports/cms-api/internal/infrastructure/config"
	"github.com/arcadia-esports/cms-api/internal/infrastructure/db/mongo"
	"github.com/arcadia-esports/cms-api/internal/infrastructure/db/postgres"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrate(cmd, true)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back all migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrate(cmd, false)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
}

func runMigrate(cmd *cobra.Command, up bool) error {
	ctx := cmd.Context()
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	if cfg.DBDriver == config.DriverMongo {
		if !up {
			log.Info().Msg("mongodb has no schema to roll back")
			return nil
		}
		store, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer store.Close(ctx)
		if err := store.EnsureIndexes(ctx); err != nil {
			return err
		}
		log.Info().Msg("mongodb indexes ensured")
		return nil
	}

	if err := postgres.Migrate(cfg.Postgres.URL(), up); err != nil {
		return err
	}
	log.Info().Bool("up", up).Msg("migrations applied")
	return nil
}
