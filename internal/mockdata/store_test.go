package mockdata

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/models"
	"github.com/trogers1052/trade-transparency/internal/trades"
)

func TestDefault_LoadsBundledDataSet(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	traders, err := store.Traders(ctx)
	require.NoError(t, err)
	assert.Len(t, traders, 6)
	assert.Equal(t, "trader-1", traders[0].ID)

	list, err := store.TradesByTrader(ctx, "trader-1")
	require.NoError(t, err)
	assert.Len(t, list, 25)

	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i-1].TradeNumber, list[i].TradeNumber)
	}
	for _, tr := range list {
		_, err := trades.ParsePublishedAt(tr.PublishedAt(), time.UTC)
		assert.NoError(t, err, tr.ID)
	}
}

func TestDefault_CoversEveryStatus(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	list, err := store.TradesByTrader(context.Background(), "trader-1")
	require.NoError(t, err)

	seen := map[trades.Status]int{}
	for _, tr := range list {
		seen[trades.Classify(tr)]++
	}
	assert.Equal(t, 2, seen[trades.StatusActive])
	assert.Equal(t, 1, seen[trades.StatusWaiting])
	assert.Equal(t, 3, seen[trades.StatusExpired])
	assert.Positive(t, seen[trades.StatusClosedProfit])
	assert.Positive(t, seen[trades.StatusClosedLoss])
}

func TestDefault_PeriodCounts(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	list, err := store.TradesByTrader(context.Background(), "trader-1")
	require.NoError(t, err)

	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	assert.Len(t, trades.FilterByPeriod(list, trades.PeriodWeek, now, time.UTC), 2)
	assert.Len(t, trades.FilterByPeriod(list, trades.PeriodMonth, now, time.UTC), 7)
	assert.Len(t, trades.FilterByPeriod(list, trades.PeriodQuarter, now, time.UTC), 22)
	assert.Len(t, trades.FilterByPeriod(list, trades.PeriodAll, now, time.UTC), 25)
}

func TestStore_NotFound(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Trader(ctx, "nobody")
	assert.ErrorIs(t, err, dashboard.ErrNotFound)

	_, err = store.Trade(ctx, "nothing")
	assert.ErrorIs(t, err, dashboard.ErrNotFound)

	_, err = store.TradesByTrader(ctx, "nobody")
	assert.ErrorIs(t, err, dashboard.ErrNotFound)
}

func TestStore_TradeLookup(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	tr, err := store.Trade(context.Background(), "trade-1-021")
	require.NoError(t, err)
	assert.Equal(t, "DOGEUSDT", tr.Symbol())
	assert.Equal(t, models.SideShort, tr.Side())
	assert.Equal(t, 22.4, tr.ResultPercent)
	require.NotNil(t, tr.ParsedSignal.Signal.Entry.Range)
	assert.Nil(t, tr.ParsedSignal.Signal.Entry.Price)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	list, err := store.TradesByTrader(ctx, "trader-1")
	require.NoError(t, err)
	list[0].ID = "mutated"

	again, err := store.TradesByTrader(ctx, "trader-1")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].ID)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown trader",
			yaml: "traders: []\ntrades:\n  - id: a\n    traderId: ghost\n",
			want: "unknown trader",
		},
		{
			name: "duplicate trade",
			yaml: "traders:\n  - id: t1\ntrades:\n  - id: a\n    traderId: t1\n  - id: a\n    traderId: t1\n",
			want: "duplicate trade",
		},
		{
			name: "non-finite result",
			yaml: "traders:\n  - id: t1\ntrades:\n  - id: a\n    traderId: t1\n    pnlUsdt: .nan\n",
			want: "non-finite",
		},
		{
			name: "unknown field",
			yaml: "traders:\n  - id: t1\n    nickname: x\n",
			want: "decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
