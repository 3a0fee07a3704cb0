package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/arcadia-esports/cms-api/internal/api"
	"github.com/arcadia-esports/cms-api/internal/api/handler"
	"github.com/arcadia-esports/cms-api/internal/core/domain"
	"github.com/arcadia-esports/cms-api/internal/core/service"
	dbredis "github.com/arcadia-esports/cms-api/internal/infrastructure/db/redis"
	"github.com/arcadia-esports/cms-api/internal/infrastructure/storage"
	"github.com/arcadia-esports/cms-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server. Usage:

	cms serve
`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	// The signing secret is fixed here for the life of the process.
	tokens, err := service.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return err
	}

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repos.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	checks := map[string]handler.Check{"database": repos.ping}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = dbredis.Connect(ctx, dbredis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, Password: cfg.Redis.Password})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, rate limiting stays in-process")
			rdb = nil
		} else {
			defer rdb.Close()
			checks["redis"] = func(ctx context.Context) error { return dbredis.Ping(ctx, rdb) }
		}
	}

	objects, err := storage.New(cfg)
	if err != nil {
		return err
	}
	if err := objects.EnsureBucket(ctx); err != nil {
		return err
	}

	auth, err := service.NewAuthService(repos.users, tokens, cfg.BcryptCost, logger.Component("auth"))
	if err != nil {
		return err
	}
	svcLog := logger.Component("content")

	e := api.NewRouter(api.Deps{
		Auth:     auth,
		Verifier: tokens,

		Teams:        service.NewTeamService(repos.teams, svcLog),
		Events:       service.NewCatalogService[domain.Event](repos.events, "Event", svcLog),
		Staff:        service.NewCatalogService[domain.Member](repos.staff, "Staff member", svcLog),
		Leadership:   service.NewCatalogService[domain.Member](repos.leadership, "Leadership member", svcLog),
		Sponsors:     service.NewCatalogService[domain.Sponsor](repos.sponsors, "Sponsor", svcLog),
		Applications: service.NewApplicationService(repos.applications, objects, cfg.Upload.MaxBytes, svcLog),
		Contact:      service.NewContactService(repos.contact, svcLog),
		Storage:      objects,

		AuthLimiter: dbredis.NewLimiter(rdb, dbredis.PerMinute(cfg.RateLimit.AuthPerMinute), log),
		Checks:      checks,

		FrontendURL:    cfg.FrontendURL,
		MaxUploadBytes: cfg.Upload.MaxBytes,
		Log:            log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("db_driver", cfg.DBDriver).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
