// Package app assembles the data provider selected by configuration.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"

	"github.com/trogers1052/trade-transparency/internal/config"
	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/database"
	"github.com/trogers1052/trade-transparency/internal/mockdata"
	"github.com/trogers1052/trade-transparency/internal/redis"
)

// Backend is the provider together with the connections it owns. DB and
// Cache are nil when not in use.
type Backend struct {
	Provider dashboard.Provider
	DB       *database.DB
	Cache    *redis.Client
}

// Open builds the provider for cfg.Data.Source and, when Redis is enabled and
// reachable, wraps it in the cache
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	b := &Backend{}

	switch cfg.Data.Source {
	case config.SourcePostgres:
		if cfg.Migrations.Enabled {
			if err := RunMigrations(cfg.Migrations.Path, cfg.Database.ConnectionString(), logger); err != nil {
				return nil, err
			}
		}
		db, err := database.New(ctx, cfg.Database.ConnectionString())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Info("Connected to PostgreSQL database",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.DBName),
		)
		b.DB = db
		b.Provider = db
	default:
		store, err := mockdata.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load mock data set: %w", err)
		}
		logger.Info("Serving bundled mock data set")
		b.Provider = store
	}

	if cfg.Redis.Enabled {
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		} else {
			logger.Info("Connected to Redis cache",
				zap.String("addr", cfg.Redis.Address()),
				zap.Duration("ttl", cfg.Redis.TTL),
			)
			b.Cache = client
			b.Provider = redis.NewCachedProvider(b.Provider, client, cfg.Redis.TTL, logger)
		}
	}

	return b, nil
}

// Close releases the connections of the backend
func (b *Backend) Close() error {
	var errs []error
	if b.Cache != nil {
		if err := b.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if b.DB != nil {
		if err := b.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}

// RunMigrations applies the migrations found under path to the database
func RunMigrations(path, databaseURL string, logger *zap.Logger) error {
	m, err := migrate.New("file://"+path, databaseURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No migrations to apply; database is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Applied database migrations", zap.String("path", path))
	return nil
}
