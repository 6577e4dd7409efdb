// Package httpd implements the HTTP server for the page insights service.
package httpd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/pageinsights/internal/api"
	"github.com/jonesrussell/pageinsights/internal/config"
	"github.com/jonesrussell/pageinsights/internal/logger"
	"github.com/jonesrussell/pageinsights/internal/render"
	"github.com/jonesrussell/pageinsights/internal/scraper"
	"github.com/jonesrussell/pageinsights/internal/service"
	"github.com/jonesrussell/pageinsights/internal/storage"
)

const (
	signalChannelBufferSize = 1
	errorChannelBufferSize  = 1
	defaultShutdownTimeout  = 30 * time.Second
)

// Command returns the httpd subcommand.
func Command(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "httpd",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Start(cmd.Context(), *cfgFile)
		},
	}
}

// Start starts the HTTP server and runs until interrupted. It handles
// graceful shutdown on SIGINT or SIGTERM signals.
func Start(ctx context.Context, cfgFile string) error {
	// Phase 1: Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Phase 2: Create logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	// Phase 3: Connect the store
	store, err := storage.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}

	// Phase 4: Assemble the pipeline
	sessions := render.NewHTTPSessionFactory(cfg.Render, log)
	nav := render.NewNavigator(cfg.Navigator, log)
	fetcher := scraper.New(sessions, nav, cfg.Scraper, log)
	svc := service.New(store.Pages(), store.Posts(), store.Employees(), fetcher, log)

	// Phase 5: Start the HTTP server
	router := api.SetupRouter(log, svc, cfg.CORS.AllowedOrigins)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Info("Starting HTTP server", "addr", server.Addr)
	errChan := make(chan error, errorChannelBufferSize)
	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	// Phase 6: Run until interrupted
	return runUntilInterrupt(log, server, store, errChan)
}

// runUntilInterrupt runs the server until interrupted by signal or error.
func runUntilInterrupt(
	log logger.Interface,
	server *http.Server,
	store *storage.Store,
	errChan chan error,
) error {
	sigChan := make(chan os.Signal, signalChannelBufferSize)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case serverErr := <-errChan:
		log.Error("Server error", "error", serverErr)
		return fmt.Errorf("server error: %w", serverErr)
	case sig := <-sigChan:
		return shutdown(log, server, store, sig)
	}
}

// shutdown performs graceful shutdown of the server and the store.
func shutdown(
	log logger.Interface,
	server *http.Server,
	store *storage.Store,
	sig os.Signal,
) error {
	log.Info("Shutdown signal received", "signal", sig.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	log.Info("Stopping HTTP server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to stop server", "error", err)
		return fmt.Errorf("stop server: %w", err)
	}

	log.Info("Closing store connection")
	if err := store.Close(shutdownCtx); err != nil {
		log.Error("Failed to close store", "error", err)
	}

	log.Info("Server stopped successfully")
	return nil
}
