package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "sem-planner/internal/adapter/http"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Start the HTTP API under /api/v1/sem. On SIGINT or SIGTERM the server
stops accepting connections and drains in-flight requests for up to five
seconds.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := bootstrap(ctx, false)
	if err != nil {
		return err
	}
	defer a.close()

	handler := httpadapter.NewHandler(a.svc, a.logger, a.cfg.HTTP.AllowedOrigins)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)), slog.String("env", a.cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		a.logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
