package redis

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/metrics"
	"github.com/trogers1052/trade-transparency/internal/models"
)

const keyPrefix = "dashboard:"

// Cache stores JSON values by key
type Cache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

// CachedProvider memoizes provider reads in a Cache. Cache failures are
// logged and the read falls through to the wrapped provider. Errors from the
// provider, including not found, are never cached.
type CachedProvider struct {
	next   dashboard.Provider
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedProvider wraps next with cache
func NewCachedProvider(next dashboard.Provider, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProvider{next: next, cache: cache, ttl: ttl, logger: logger}
}

// Traders returns all traders
func (p *CachedProvider) Traders(ctx context.Context) ([]models.Trader, error) {
	return cached(ctx, p, "traders", keyPrefix+"traders", p.next.Traders)
}

// Trader returns one trader
func (p *CachedProvider) Trader(ctx context.Context, id string) (*models.Trader, error) {
	return cached(ctx, p, "trader", keyPrefix+"trader:"+id, func(ctx context.Context) (*models.Trader, error) {
		return p.next.Trader(ctx, id)
	})
}

// TradesByTrader returns the trader's trades, newest first
func (p *CachedProvider) TradesByTrader(ctx context.Context, traderID string) ([]models.Trade, error) {
	return cached(ctx, p, "trades", keyPrefix+"trades:"+traderID, func(ctx context.Context) ([]models.Trade, error) {
		return p.next.TradesByTrader(ctx, traderID)
	})
}

// Trade returns one trade
func (p *CachedProvider) Trade(ctx context.Context, id string) (*models.Trade, error) {
	return cached(ctx, p, "trade", keyPrefix+"trade:"+id, func(ctx context.Context) (*models.Trade, error) {
		return p.next.Trade(ctx, id)
	})
}

func cached[T any](ctx context.Context, p *CachedProvider, op, key string, load func(context.Context) (T, error)) (T, error) {
	var v T
	found, err := p.cache.GetJSON(ctx, key, &v)
	switch {
	case err != nil:
		metrics.CacheLookup(op, "error")
		p.logger.Warn("Cache read failed, continuing without cache",
			zap.String("key", key),
			zap.Error(err),
		)
	case found:
		metrics.CacheLookup(op, "hit")
		return v, nil
	default:
		metrics.CacheLookup(op, "miss")
	}

	v, err = load(ctx)
	if err != nil {
		return v, err
	}

	if err := p.cache.SetJSON(ctx, key, v, p.ttl); err != nil {
		p.logger.Warn("Cache write failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return v, nil
}

var (
	_ dashboard.Provider = (*CachedProvider)(nil)
	_ Cache              = (*Client)(nil)
)
