package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"strmath/internal/logger"
)

// app holds state shared by every subcommand of one invocation.
type app struct {
	logLevel string
	logFile  string
	log      *logger.Logger
	closer   io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "strmath",
		Short: "Whitespace trimming and C-compatible integer addition",
		Long: `strmath exposes the textutil trimming helpers and the mathx adder.

Use the ltrim, rtrim, trim and add commands for one-off calls, or check to run
a YAML scenario suite and print a result table.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setupLogging,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.AddCommand(newTrimCmds()...)
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newInitConfigCmd(a))

	return rootCmd
}

func (a *app) setupLogging(cmd *cobra.Command, args []string) error {
	if a.logFile == "" {
		a.log = logger.NewLoggerTo(cmd.ErrOrStderr(), a.logLevel)

		return nil
	}

	f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	a.log = logger.NewLoggerTo(f, a.logLevel)
	a.closer = f

	return nil
}
