package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/brunobiangulo/tgschema"
)

func newServeCmd() *cobra.Command {
	var (
		addr        string
		corsOrigins string
		refresh     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve [source]",
		Short: "Serve the extracted schema over HTTP",
		Long: `Extract the schema once and serve it read-only as JSON:

  GET /health  GET /schema  GET /changes
  GET /types   GET /types/{name}
  GET /methods GET /methods/{name}

With --refresh the page is extracted again on that interval. A failed
refresh is logged and the previous schema keeps being served.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args, os.Stdout, true)
			if err != nil {
				return err
			}
			if v := os.Getenv("TGSCHEMA_CORS_ORIGINS"); v != "" && !cmd.Flags().Changed("cors-origins") {
				corsOrigins = v
			}
			return serve(cmd.Context(), cfg, addr, corsOrigins, refresh)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins (or TGSCHEMA_CORS_ORIGINS)")
	cmd.Flags().DurationVar(&refresh, "refresh", 0, "Re-extract the page on this interval (0 disables)")
	return cmd
}

func serve(ctx context.Context, cfg tgschema.Config, addr, corsOrigins string, refresh time.Duration) error {
	s, err := extract(ctx, cfg)
	if err != nil {
		return err
	}

	h := newHandler(s)
	mux := http.NewServeMux()
	h.routes(mux)

	// Middleware chain: recovery -> cors -> logging -> mux
	var handler http.Handler = mux
	handler = logMiddleware(handler)
	handler = corsMiddleware(corsOrigins, handler)
	handler = recoveryMiddleware(handler)

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if refresh > 0 {
		go h.refreshLoop(ctx, cfg, refresh)
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", addr, "source", cfg.Source)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

// refreshLoop replaces the served schema every interval until ctx is done.
func (h *handler) refreshLoop(ctx context.Context, cfg tgschema.Config, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s, err := extract(ctx, cfg)
			if err != nil {
				slog.Error("refresh failed, keeping previous schema", "error", err)
				continue
			}
			h.set(s)
		}
	}
}
