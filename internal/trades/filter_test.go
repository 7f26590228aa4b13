package trades

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trogers1052/trade-transparency/internal/models"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
	}{
		{"7", PeriodWeek},
		{"30", PeriodMonth},
		{"90", PeriodQuarter},
		{"all", PeriodAll},
		{"", PeriodAll},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		if tt.in != "" {
			assert.Equal(t, tt.in, got.String())
		}
	}

	for _, bad := range []string{"0", "14", "-7", "week", "7d"} {
		_, err := ParsePeriod(bad)
		assert.ErrorIs(t, err, ErrInvalidPeriod, bad)
	}
}

func TestFilterByPeriod_Boundary(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	format := func(ts time.Time) string { return ts.Format(PublishedLayout) }

	justOutside := tradeAt("outside", format(now.AddDate(0, 0, -7).Add(-time.Second)))
	exactlyAtCutoff := tradeAt("cutoff", format(now.AddDate(0, 0, -7)))
	inside := tradeAt("inside", format(now.AddDate(0, 0, -6)))

	got := FilterByPeriod([]models.Trade{justOutside, exactlyAtCutoff, inside}, PeriodWeek, now, time.UTC)

	require.Len(t, got, 1)
	assert.Equal(t, "inside", got[0].ID)
}

func TestFilterByPeriod_All(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	trades := []models.Trade{
		tradeAt("old", "01.01.2020 00:00:00"),
		tradeAt("broken", "not a date"),
	}

	assert.Len(t, FilterByPeriod(trades, PeriodAll, now, time.UTC), 2)
}

func TestFilterByPeriod_ExcludesUnparseableDates(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	trades := []models.Trade{
		tradeAt("recent", "18.10.2026 08:00:00"),
		tradeAt("broken", "2026-10-18 08:00:00"),
	}

	for _, p := range []Period{PeriodWeek, PeriodMonth, PeriodQuarter} {
		got := FilterByPeriod(trades, p, now, time.UTC)
		require.Len(t, got, 1, p.String())
		assert.Equal(t, "recent", got[0].ID)
	}
}

func TestFilterByPeriod_PreservesOrder(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	var trades []models.Trade
	for i := 0; i < 40; i++ {
		published := now.Add(-time.Duration(i) * 24 * time.Hour).Add(-time.Minute)
		trades = append(trades, tradeAt(fmt.Sprintf("t%02d", i), published.Format(PublishedLayout)))
	}

	got := FilterByPeriod(trades, PeriodMonth, now, time.UTC)
	require.Len(t, got, 30)
	for i, trade := range got {
		assert.Equal(t, fmt.Sprintf("t%02d", i), trade.ID)
	}
}

func TestPeriod_MessageID(t *testing.T) {
	assert.Equal(t, "filter.week", PeriodWeek.MessageID())
	assert.Equal(t, "filter.month", PeriodMonth.MessageID())
	assert.Equal(t, "filter.allTime", PeriodAll.MessageID())
	assert.Equal(t, "filter.quarter", PeriodQuarter.MessageID())
}
