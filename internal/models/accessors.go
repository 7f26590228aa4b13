package models

import "strings"

// Accessors below are total: missing optional fields degrade to zero values.

// Symbol returns the raw symbol of the signal
func (t Trade) Symbol() string {
	return t.ParsedSignal.Signal.SymbolRaw
}

// Base returns the symbol with its USDT quote suffix removed
func (t Trade) Base() string {
	return strings.Replace(t.Symbol(), "USDT", "", 1)
}

// Side returns the signal direction
func (t Trade) Side() Side {
	return t.ParsedSignal.Signal.Side
}

// Leverage returns the leverage multiplier of the signal
func (t Trade) Leverage() float64 {
	return t.ParsedSignal.Signal.LeverageX
}

// PublishedAt returns the publish timestamp text exactly as received
func (t Trade) PublishedAt() string {
	return t.ParsedSignal.Source.PublishedAtText
}

// EntryPrice returns the point entry price, the midpoint of the entry range,
// or 0 for a market order
func (t Trade) EntryPrice() float64 {
	entry := t.ParsedSignal.Signal.Entry
	if entry.Price != nil {
		return *entry.Price
	}
	if entry.Range != nil {
		return (entry.Range.Low + entry.Range.High) / 2
	}
	return 0
}

// TakeProfitPrices returns TP prices in signal order
func (t Trade) TakeProfitPrices() []float64 {
	tps := t.ParsedSignal.Signal.TakeProfits
	prices := make([]float64, 0, len(tps))
	for _, tp := range tps {
		prices = append(prices, tp.Price)
	}
	return prices
}

// TakeProfitPrice returns the price of the n-th take profit (0-based) and
// whether it exists
func (t Trade) TakeProfitPrice(n int) (float64, bool) {
	tps := t.ParsedSignal.Signal.TakeProfits
	if n < 0 || n >= len(tps) {
		return 0, false
	}
	return tps[n].Price, true
}

// StopLossPrice returns the stop-loss price of the signal
func (t Trade) StopLossPrice() float64 {
	return t.ParsedSignal.Signal.StopLoss.Price
}

// Confidence returns the parser confidence
func (t Trade) Confidence() float64 {
	return t.ParsedSignal.Meta.Confidence
}

// HasFill reports whether an actual entry fill was recorded
func (t Trade) HasFill() bool {
	return t.ActualEntryPrice != nil
}
