package trades

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/trogers1052/trade-transparency/internal/models"
)

// ErrInvalidPeriod is returned for period selectors other than 7, 30, 90 or all
var ErrInvalidPeriod = errors.New("invalid period")

// Period is a trailing time window in days. PeriodAll is unrestricted.
type Period int

const (
	PeriodWeek    Period = 7
	PeriodMonth   Period = 30
	PeriodQuarter Period = 90
	PeriodAll     Period = 0
)

// Periods lists the selectable windows in display order
var Periods = []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodAll}

// ParsePeriod parses "7", "30", "90" or "all". An empty selector means all.
func ParsePeriod(s string) (Period, error) {
	if s == "" || s == "all" {
		return PeriodAll, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return PeriodAll, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	for _, p := range Periods {
		if p != PeriodAll && int(p) == days {
			return p, nil
		}
	}
	return PeriodAll, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}

// String returns the selector form of the period
func (p Period) String() string {
	if p == PeriodAll {
		return "all"
	}
	return strconv.Itoa(int(p))
}

// MessageID returns the translation key of the period label
func (p Period) MessageID() string {
	switch p {
	case PeriodWeek:
		return "filter.week"
	case PeriodMonth:
		return "filter.month"
	case PeriodQuarter:
		return "filter.quarter"
	default:
		return "filter.allTime"
	}
}

// Cutoff returns the instant a trade must be strictly after to fall in the window
func (p Period) Cutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -int(p))
}

// FilterByPeriod keeps trades published strictly after now minus the period.
// Trades whose publish time cannot be parsed never match a finite period.
func FilterByPeriod(trades []models.Trade, p Period, now time.Time, loc *time.Location) []models.Trade {
	if p == PeriodAll {
		return trades
	}
	cutoff := p.Cutoff(now)
	filtered := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		published, err := ParsePublishedAt(t.PublishedAt(), loc)
		if err != nil {
			continue
		}
		if published.After(cutoff) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
