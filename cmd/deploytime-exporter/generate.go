package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/deploytime-exporter/internal/app"
	"github.com/skillcoder/deploytime-exporter/internal/config"
	"github.com/skillcoder/deploytime-exporter/internal/infra/logging"
	"github.com/skillcoder/deploytime-exporter/internal/infra/shutdown"
	"github.com/skillcoder/deploytime-exporter/internal/logic/deploytime"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// signalQuit adapts the process signal channel to the shutdown handler.
type signalQuit <-chan os.Signal

func (s signalQuit) Quit() <-chan os.Signal {
	return s
}

func newGenerateCmd(signals <-chan os.Signal) *cobra.Command {
	var (
		namespaces []string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run a single generation pass and print the deploy time records",
		Long: `Run a single generation pass and print the deploy time records.

Examples:
  deploytime-exporter generate -n shop,billing
  deploytime-exporter generate -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputYAML && output != outputJSON {
				return fmt.Errorf("unsupported output format %q, use %s or %s", output, outputYAML, outputJSON)
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if len(namespaces) > 0 {
				cfg.Namespaces = namespaces
			}

			logger := logging.New(cfg.LogFormat, cfg.LogLevel)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go shutdown.New(logger, signalQuit(signals)).HandleSignals(ctx, cancel)

			exporter, err := app.NewExporter(logger, cfg)
			if err != nil {
				return fmt.Errorf("new exporter: %w", err)
			}

			if err := exporter.RefreshCommand(ctx); err != nil {
				return fmt.Errorf("generation pass: %w", err)
			}

			return writeRecords(cmd.OutOrStdout(), output, exporter.Snapshot())
		},
	}

	cmd.Flags().StringSliceVarP(&namespaces, "namespace", "n", nil,
		"Namespaces to inspect (default: DEPLOYTIME_NAMESPACES, else discovered)")
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format: yaml or json")

	return cmd
}

func writeRecords(w io.Writer, output string, records []deploytime.DeployTimeMetric) error {
	if records == nil {
		records = []deploytime.DeployTimeMetric{}
	}

	var (
		data []byte
		err  error
	)

	switch output {
	case outputJSON:
		data, err = json.MarshalIndent(records, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(records)
	}

	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	return nil
}
