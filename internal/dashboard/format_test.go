package dashboard

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"golang.org/x/text/language"
)

func TestSignedPercent(t *testing.T) {
	assert.Equal(t, "+20.0%", SignedPercent(20))
	assert.Equal(t, "-4.2%", SignedPercent(-4.2))
	assert.Equal(t, "0.0%", SignedPercent(0))
	assert.Equal(t, "+3.1%", SignedPercent(3.14159))
}

func TestSignedUsdt(t *testing.T) {
	assert.Equal(t, "+12.34", SignedUsdt(12.34))
	assert.Equal(t, "-3.10", SignedUsdt(-3.1))
	assert.Equal(t, "0.00", SignedUsdt(0))
}

func TestFormatters_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.NotPanics(t, func() {
			assert.Equal(t, "0.0%", SignedPercent(v))
			assert.Equal(t, "0.00", SignedUsdt(v))
			assert.Equal(t, "0", CompactUsdt(v))
			assert.Equal(t, "0%", Ratio(v))
			assert.Equal(t, "x0", Leverage(v))
			assert.Equal(t, "0", Price(v))
		})
	}
}

func TestCompactUsdt(t *testing.T) {
	assert.Equal(t, "950", CompactUsdt(950))
	assert.Equal(t, "1.0k", CompactUsdt(1000))
	assert.Equal(t, "12.5k", CompactUsdt(12480))
	assert.Equal(t, "-250", CompactUsdt(-250))
}

func TestLeverageAndPrice(t *testing.T) {
	assert.Equal(t, "x10", Leverage(10))
	assert.Equal(t, "x12.5", Leverage(12.5))
	assert.Equal(t, "0.0412", Price(0.0412))
	assert.Equal(t, "64250", Price(64250))
}

func TestEventTime(t *testing.T) {
	ts := time.Date(2026, time.October, 3, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "3 Oct, 14:05", EventTime(&ts))
	assert.Equal(t, "", EventTime(nil))
}

func TestLongDate(t *testing.T) {
	catalog, err := i18n.New("en")
	require.NoError(t, err)
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "1 June 2026", LongDate(day, nil))
	assert.Equal(t, "1 June 2026", LongDate(day, catalog.Localizer(language.English)))
	assert.Equal(t, "1 июня 2026", LongDate(day, catalog.Localizer(language.Russian)))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "33.00", Amount(33))
	assert.Equal(t, "67.00", Amount(67))
	assert.Equal(t, "6.60", Amount(6.6))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "91%", Ratio(0.91))
	assert.Equal(t, "100%", Ratio(1))
	assert.Equal(t, "0%", Ratio(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "82.6%", Percent(82.6))
	assert.Equal(t, "-12.4%", Percent(-12.4))
}
