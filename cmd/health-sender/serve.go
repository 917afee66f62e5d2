package main

import (
	"PreTrip_Health_Sender/internal/health-sender/api/handler"
	"PreTrip_Health_Sender/internal/health-sender/api/routes"
	"PreTrip_Health_Sender/internal/health-sender/scheduler"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the sync scheduler and the trigger API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(opts.envFile)
			if err != nil {
				return err
			}
			defer a.Close()
			return serve(cmd.Context(), a)
		},
	}
}

func serve(ctx context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	syncScheduler := scheduler.NewSyncScheduler(a.cfg.Sync.Schedule, a.cfg.Sync.OnStart, a.cfg.Sync.Timeout, a.pipeline, a.logger)
	if err := syncScheduler.Start(); err != nil {
		return err
	}
	defer syncScheduler.Stop()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetUpSyncRoutes(r, handler.NewSyncHandler(handler.NewLogger(a.logger), a.pipeline, a.cfg.Sync.Timeout))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.cfg.Server.HTTPPort),
		Handler: r,
	}
	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			serveErr <- e
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	a.logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server forced to shutdown", zap.Error(err))
	}
	a.logger.Info("server exiting")
	return nil
}
