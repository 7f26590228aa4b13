package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/trogers1052/trade-transparency/internal/api"
	"github.com/trogers1052/trade-transparency/internal/app"
	"github.com/trogers1052/trade-transparency/internal/config"
	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.New(logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync()

	loc, err := cfg.Locale.Location()
	if err != nil {
		zl.Fatal("Invalid time zone", zap.Error(err))
	}

	catalog, err := i18n.New(cfg.Locale.Default)
	if err != nil {
		zl.Fatal("Failed to load translations", zap.Error(err))
	}

	// Create context for start-up and graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := app.Open(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("Failed to open data provider", zap.Error(err))
	}
	defer backend.Close()

	service := dashboard.NewService(backend.Provider, zl, dashboard.WithLocation(loc))

	// Set up HTTP handler and routes
	opts := api.Options{
		Service:  service,
		Catalog:  catalog,
		Logger:   zl,
		Source:   cfg.Data.Source,
		TraderID: cfg.Data.TraderID,
	}
	if backend.DB != nil {
		opts.Database = backend.DB
	}
	if backend.Cache != nil {
		opts.Cache = backend.Cache
	}
	handler, err := api.NewHandler(opts)
	if err != nil {
		zl.Fatal("Failed to create handler", zap.Error(err))
	}
	router := api.SetupRoutes(handler)

	// Create HTTP server
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		zl.Info("Starting server",
			zap.String("addr", addr),
			zap.String("source", cfg.Data.Source),
			zap.String("locale", catalog.Default().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down server...")
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}

	zl.Info("Server stopped")
}
