// Package server exposes trip sheet conversion over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ukaji3/tripsheet-go/internal/config"
	"github.com/ukaji3/tripsheet-go/internal/history"
	"github.com/ukaji3/tripsheet-go/internal/logging"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet"
)

const shutdownTimeout = 10 * time.Second

// Server serves the conversion API.
type Server struct {
	cfg       *config.Config
	store     *history.Store
	logger    *zap.Logger
	startTime time.Time
}

// New creates a server backed by store.
func New(cfg *config.Config, store *history.Store, logger *zap.Logger) *Server {
	return &Server{
		cfg:       cfg,
		store:     store,
		logger:    logging.OrNop(logger),
		startTime: time.Now(),
	}
}

// conversionOptions returns the options uploads are converted with.
func (s *Server) conversionOptions() tripsheet.Options {
	opts := tripsheet.DefaultOptions()
	opts.Timeout = s.cfg.Conversion.ParseTimeout
	opts.OutputSheet = s.cfg.Conversion.SheetName
	return opts
}

// Run listens on the configured address until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
		IdleTimeout:       s.cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-serverErrors
}
