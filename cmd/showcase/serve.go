package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/vangoframework/formkit/app/components/ui"
	"github.com/vangoframework/formkit/internal/config"
	"github.com/vangoframework/formkit/internal/handlers"
	"github.com/vangoframework/formkit/internal/hub"
	"github.com/vangoframework/formkit/internal/middleware"
	"github.com/vangoframework/formkit/internal/session"
	"github.com/vangoframework/formkit/internal/showcase"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the showcase HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, flags, port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port, overrides PORT")

	return cmd
}

func serve(ctx context.Context, flags *rootFlags, port string) error {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port != "" {
		cfg.Port = port
	}

	logger := newLogger(cfg, flags.verbose)
	slog.SetDefault(logger)

	// Component misuse warnings are a development aid
	if cfg.IsDevelopment() {
		ui.SetWarningLogger(logger)
	}

	catalog, err := showcase.DefaultCatalog()
	if err != nil {
		return err
	}

	// Session store
	sessions := session.NewStore(
		cfg.SessionSecret,
		cfg.SessionMaxAge,
		cfg.IsProduction(),
	)

	// Live pages
	pages := hub.New[*showcase.Form](cfg.PageTTL, logger)
	go pages.Run(ctx, time.Minute)

	// Handlers
	h := handlers.New(cfg, pages, catalog, sessions, logger)

	// Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Session(sessions, logger))

	h.Routes(r)

	// Server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// newLogger logs JSON in production and text elsewhere.
func newLogger(cfg *config.Config, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
