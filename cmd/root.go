// Package cmd holds the cms command tree.
package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arcadia-esports/cms-api/internal/infrastructure/config"
	"github.com/arcadia-esports/cms-api/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands.
// It serves the API.
var rootCmd = &cobra.Command{
	Use:           "cms",
	Short:         "Esports organization CMS API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute adds all child commands to the root command and runs it with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// bootstrap loads configuration and initialises the process logger.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "cms-api",
	})
	return cfg, log, nil
}
