package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned for a trade carrying NaN or an infinity
var ErrNonFinite = errors.New("non-finite number")

// CheckFinite reports the first numeric field of t that is NaN or infinite
func (t Trade) CheckFinite() error {
	fields := []struct {
		name  string
		value *float64
	}{
		{"resultPercent", &t.ResultPercent},
		{"pnlUsdt", &t.PnlUsdt},
		{"actualEntryPrice", t.ActualEntryPrice},
		{"exitPrice", t.ExitPrice},
		{"entryAmountUsdt", t.EntryAmountUsdt},
		{"assetVolume", t.AssetVolume},
	}
	for _, f := range fields {
		if f.value != nil && !IsFinite(*f.value) {
			return fmt.Errorf("trade %s %s: %w", t.ID, f.name, ErrNonFinite)
		}
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor an infinity
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
