package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/models"
)

// EventTimeLayout formats timeline timestamps, e.g. "3 Oct, 14:05"
const EventTimeLayout = "2 Jan, 15:04"

var thousand = decimal.NewFromInt(1000)

// toDecimal treats NaN and infinities as zero
func toDecimal(v float64) decimal.Decimal {
	if !models.IsFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func decimalFixed(v float64, places int32) string {
	return toDecimal(v).StringFixed(places)
}

// Percent formats a percentage with one decimal and no sign prefix
func Percent(v float64) string {
	return decimalFixed(v, 1) + "%"
}

// SignedPercent formats a result as "+20.0%" / "-4.2%" / "0.0%"
func SignedPercent(v float64) string {
	return sign(v) + Percent(v)
}

// SignedUsdt formats a P&L amount as "+12.34" / "-3.10"
func SignedUsdt(v float64) string {
	return sign(v) + toDecimal(v).StringFixed(2)
}

// Amount formats an unsigned amount with two decimals
func Amount(v float64) string {
	return decimalFixed(v, 2)
}

// CompactUsdt abbreviates amounts of 1000 and above: 1234 -> "1.2k", 950 -> "950"
func CompactUsdt(v float64) string {
	d := toDecimal(v)
	if d.GreaterThanOrEqual(thousand) {
		return d.Div(thousand).StringFixed(1) + "k"
	}
	return d.StringFixed(0)
}

// Ratio formats a 0..1 fraction as a whole percent: 0.91 -> "91%"
func Ratio(v float64) string {
	return toDecimal(v).Shift(2).StringFixed(0) + "%"
}

// Leverage formats a multiplier as "x10" / "x12.5"
func Leverage(v float64) string {
	return "x" + toDecimal(v).String()
}

// Price formats a price without trailing zeros
func Price(v float64) string {
	return toDecimal(v).String()
}

// EventTime formats a timeline timestamp; nil renders empty
func EventTime(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.Format(EventTimeLayout)
}

// LongDate formats a date as "1 June 2026" with the month name of the locale
func LongDate(t time.Time, l *i18n.Localizer) string {
	month := t.Month().String()
	if l != nil {
		month = l.T(fmt.Sprintf("month.m%d", int(t.Month())))
	}
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
}

func sign(v float64) string {
	if v > 0 && models.IsFinite(v) {
		return "+"
	}
	return ""
}
