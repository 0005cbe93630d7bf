package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/tripsheet-go/internal/config"
	"github.com/ukaji3/tripsheet-go/internal/history"
	"github.com/ukaji3/tripsheet-go/internal/logging"
	"github.com/ukaji3/tripsheet-go/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			serverLogger, err := logging.New(level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer serverLogger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store := history.New(cfg.History.TTL, cfg.History.CleanupInterval)
			serverLogger.Info("history configured",
				zap.Duration("ttl", cfg.History.TTL),
				zap.Duration("parse_timeout", cfg.Conversion.ParseTimeout),
			)
			return server.New(cfg, store, serverLogger).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a yaml config file")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
