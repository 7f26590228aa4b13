package dashboard

import (
	"context"
	"errors"

	"github.com/trogers1052/trade-transparency/internal/models"
)

// ErrNotFound is returned by providers for unknown trader or trade IDs
var ErrNotFound = errors.New("not found")

// Provider is a read-only source of traders and their trades
type Provider interface {
	Traders(ctx context.Context) ([]models.Trader, error)
	Trader(ctx context.Context, id string) (*models.Trader, error)
	// TradesByTrader returns the trader's trades newest first
	TradesByTrader(ctx context.Context, traderID string) ([]models.Trade, error)
	Trade(ctx context.Context, id string) (*models.Trade, error)
}
