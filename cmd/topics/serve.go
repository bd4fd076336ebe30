package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/topic-core/internal/interfaces/http/rest"
)

type serveFlags struct {
	addr string
	seed string
}

func newServeCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the topics HTTP API",
		Long: `Starts the HTTP API. Topics live in memory for the lifetime of the process.

Examples:
  topics serve
  topics serve --addr :9090 --seed topics.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&flags.seed, "seed", "", "Seed file to load before serving (json, csv, yaml)")

	return cmd
}

func runServe(ctx context.Context, flags serveFlags) error {
	return withDeps(ctx, func(d *Deps) error {
		if flags.seed != "" {
			if _, err := loadSeed(ctx, d, flags.seed); err != nil {
				return err
			}
		}

		addr := d.Config.Server.Addr
		if flags.addr != "" {
			addr = flags.addr
		}

		srv := &http.Server{
			Addr:         addr,
			Handler:      rest.NewRouter(d.TopicHandler, d.Collector, d.Logger).Setup(),
			ReadTimeout:  d.Config.Server.ReadTimeout,
			WriteTimeout: d.Config.Server.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			d.Logger.Info("starting HTTP server",
				zap.String("addr", addr),
				zap.String("audit_db", d.AuditPath),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("serving HTTP: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		d.Logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), d.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	})
}
