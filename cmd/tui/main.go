package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trogers1052/trade-transparency/internal/app"
	"github.com/trogers1052/trade-transparency/internal/config"
	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/logger"
	"github.com/trogers1052/trade-transparency/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The terminal is taken by the UI, so logs go to LOG_FILE or nowhere
	zl := zap.NewNop()
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		zl, err = logger.New(logger.Config{
			Level:       cfg.Log.Level,
			Development: cfg.Log.Development,
			Output:      zapcore.AddSync(f),
		})
		if err != nil {
			return err
		}
		defer zl.Sync()
	}

	loc, err := cfg.Locale.Location()
	if err != nil {
		return err
	}
	catalog, err := i18n.New(cfg.Locale.Default)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	ctx := context.Background()
	backend, err := app.Open(ctx, cfg, zl)
	if err != nil {
		return err
	}
	defer backend.Close()

	service := dashboard.NewService(backend.Provider, zl, dashboard.WithLocation(loc))
	traderID, err := service.DefaultTraderID(ctx, cfg.Data.TraderID)
	if err != nil {
		return err
	}

	zl.Info("Starting terminal dashboard", zap.String("trader_id", traderID))
	_, err = tea.NewProgram(tui.New(service, catalog, traderID), tea.WithAltScreen()).Run()
	return err
}
