package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"strmath/internal/config"
	"strmath/internal/harness"
	"strmath/internal/report"
)

// ErrChecksFailed is returned when at least one scenario fails.
var ErrChecksFailed = errors.New("scenario checks failed")

func newCheckCmd(a *app) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a scenario suite against every operation",
		Long: `Runs each scenario of a YAML suite and prints a result table.
Without --config the built-in suite is used.

Example:
  strmath check --config configs/suite.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()

			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return err
				}

				cfg = loaded

				// An explicit --log-level wins over the suite file.
				if !cmd.Flags().Changed("log-level") {
					a.log.SetLevel(cfg.Logging.Level)
				}
			}

			a.log.Debug("Loaded suite", "config", cfg.String())

			out := cmd.OutOrStdout()

			if cfg.Suite.Report.ShowExecutable {
				exe := harness.NewExecutable()
				if err := exe.Discover(); err != nil {
					a.log.Warn("Could not locate executable", "error", err)
				} else if dir, err := exe.ExecutableDir(); err == nil {
					fmt.Fprintf(out, "executableDir: '%s'\n\n", dir)
				}
			}

			summary, err := harness.NewRunner(cfg, a.log).Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(out, report.Table(summary.Results, cfg.Suite.Report.Quote))
			fmt.Fprintln(out)
			fmt.Fprintln(out, report.Summary(summary))

			if !summary.OK() {
				fmt.Fprintln(out)
				fmt.Fprintln(out, report.Failures(summary.Results))

				return fmt.Errorf("%w: %d of %d", ErrChecksFailed, summary.Failed, summary.Total())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML suite file")

	return cmd
}

func newInitConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <path>",
		Short: "Write the built-in suite to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DefaultConfig().SaveConfig(args[0]); err != nil {
				return err
			}

			a.log.Info("Wrote suite", "path", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote default suite to %s\n", args[0])

			return nil
		},
	}
}
