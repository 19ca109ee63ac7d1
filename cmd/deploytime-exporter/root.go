package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillcoder/deploytime-exporter/internal/app"
	"github.com/skillcoder/deploytime-exporter/internal/config"
	"github.com/skillcoder/deploytime-exporter/internal/infra/appstate"
	"github.com/skillcoder/deploytime-exporter/internal/infra/logging"
	"github.com/skillcoder/deploytime-exporter/internal/infra/pinger"
)

func newRootCmd(signals <-chan os.Signal, appStart time.Time) *cobra.Command {
	serveCmd := newServeCmd(signals, appStart)

	rootCmd := &cobra.Command{
		Use:   "deploytime-exporter",
		Short: "Export the deploy time of Kubernetes workloads as Prometheus metrics",
		Long: `Correlates pods with their replication controllers, replica sets and
Knative revisions and exports one deploy_timestamp series per application
and image digest.

Configuration is read from DEPLOYTIME_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newGenerateCmd(signals))

	return rootCmd
}

func newServeCmd(signals <-chan os.Signal, appStart time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the exporter with health and metrics endpoints (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger := logging.New(cfg.LogFormat, cfg.LogLevel)
			pingers := pinger.New(logger, cfg.PingerInterval)
			appState := appstate.New(logger, appStart, signals, pingers)

			application, err := app.New(logger, cfg, appState, pingers)
			if err != nil {
				return fmt.Errorf("new application: %w", err)
			}

			return application.Run(cmd.Context())
		},
	}
}
