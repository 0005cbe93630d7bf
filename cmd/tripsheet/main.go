// Package main provides the CLI entry point for tripsheet-go.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/tripsheet-go/internal/logging"
)

var (
	verbose bool

	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tripsheet",
		Short: "Convert trip export files into trip sheets",
		Long: `tripsheet converts transportation trip exports (CSV, xlsx or xls)
into the fixed 21-column trip sheet layout, sorted by passenger and
pickup time, and writes them as xlsx workbooks.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if verbose {
				level = "debug"
			}
			var err error
			logger, err = logging.New(level, true)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
