// Package dashboard assembles the trader page, trade history and trade detail
// views from a Provider.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/metrics"
	"github.com/trogers1052/trade-transparency/internal/models"
	"github.com/trogers1052/trade-transparency/internal/trades"
)

// TrackingDateLayout is the layout of Trader.TrackingStartDate
const TrackingDateLayout = "2006-01-02"

// Service builds dashboard views. It holds no mutable state; every call
// recomputes its derivations from the provider.
type Service struct {
	provider Provider
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
	pageSize int
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the clock used for period cutoffs and timeline fallbacks
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the zone publish times are expressed in
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.location = loc }
}

// WithPageSize overrides the history page size
func WithPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// NewService creates a Service reading from provider
func NewService(provider Provider, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		logger:   logger,
		location: time.Local,
		now:      time.Now,
		pageSize: trades.PageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Provider returns the underlying provider
func (s *Service) Provider() Provider {
	return s.provider
}

// Location returns the zone publish times are parsed in
func (s *Service) Location() *time.Location {
	return s.location
}

// DefaultTraderID returns configured when that trader exists, else the first
// trader of the provider
func (s *Service) DefaultTraderID(ctx context.Context, configured string) (string, error) {
	if configured != "" {
		_, err := s.provider.Trader(ctx, configured)
		switch {
		case err == nil:
			return configured, nil
		case !IsNotFound(err):
			return "", fmt.Errorf("failed to get trader %s: %w", configured, err)
		}
		s.logger.Warn("Configured default trader not found, using the first trader",
			zap.String("trader_id", configured),
		)
	}
	traders, err := s.provider.Traders(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list traders: %w", err)
	}
	if len(traders) == 0 {
		return "", fmt.Errorf("no traders: %w", ErrNotFound)
	}
	return traders[0].ID, nil
}

// Header is the trader card shown above the history
type Header struct {
	Trader        models.Trader `json:"trader"`
	Initial       string        `json:"initial"`
	Profitable    bool          `json:"profitable"`
	TotalPnl      string        `json:"totalPnl"`
	TotalPnlUsdt  string        `json:"totalPnlUsdt"`
	WinRate       string        `json:"winRate"`
	TrackingSince string        `json:"trackingSince"`
}

// Header builds the trader card for traderID
func (s *Service) Header(ctx context.Context, traderID string, l *i18n.Localizer) (*Header, error) {
	trader, err := s.provider.Trader(ctx, traderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trader %s: %w", traderID, err)
	}
	return newHeader(*trader, l), nil
}

func newHeader(t models.Trader, l *i18n.Localizer) *Header {
	h := &Header{
		Trader:        t,
		Initial:       t.Initial(),
		Profitable:    t.IsProfitable(),
		TotalPnl:      Percent(t.TotalPnlPercent),
		TotalPnlUsdt:  CompactUsdt(t.TotalPnlUsdt),
		WinRate:       Price(t.WinRate) + "%",
		TrackingSince: t.TrackingStartDate,
	}
	// the card sign follows the percent, so a zero total reads "+0.0%"
	if h.Profitable {
		h.TotalPnl = "+" + h.TotalPnl
		h.TotalPnlUsdt = "+" + h.TotalPnlUsdt
	}
	if started, err := time.Parse(TrackingDateLayout, t.TrackingStartDate); err == nil {
		h.TrackingSince = LongDate(started, l)
	}
	return h
}

// HistoryQuery selects a period and page of a trader's history
type HistoryQuery struct {
	Period trades.Period
	Page   int
}

// HistoryRow is one line of the trade table
type HistoryRow struct {
	ID              string                 `json:"id"`
	TradeNumber     int                    `json:"tradeNumber"`
	Date            string                 `json:"date"`
	Symbol          string                 `json:"symbol"`
	Side            models.Side            `json:"side"`
	Leverage        float64                `json:"leverage"`
	ResultPercent   float64                `json:"resultPercent"`
	PnlUsdt         float64                `json:"pnlUsdt"`
	ExecutionStatus models.ExecutionStatus `json:"executionStatus"`
	Status          trades.Status          `json:"status"`
	StatusLabel     string                 `json:"statusLabel"`
	ScreenshotURL   string                 `json:"screenshotUrl"`
}

// Result formats the row's result percent
func (r HistoryRow) Result() string { return SignedPercent(r.ResultPercent) }

// Pnl formats the row's P&L
func (r HistoryRow) Pnl() string { return SignedUsdt(r.PnlUsdt) }

// LeverageText formats the row's leverage
func (r HistoryRow) LeverageText() string { return Leverage(r.Leverage) }

// History is one page of a trader's filtered trade history
type History struct {
	TraderID      string            `json:"traderId"`
	Period        string            `json:"period"`
	Rows          []HistoryRow      `json:"rows"`
	Page          int               `json:"page"`
	TotalPages    int               `json:"totalPages"`
	PageSize      int               `json:"pageSize"`
	FilteredCount int               `json:"filteredCount"`
	TotalCount    int               `json:"totalCount"`
	PageNumbers   []trades.PageItem `json:"pageNumbers"`
	HasPrev       bool              `json:"hasPrev"`
	HasNext       bool              `json:"hasNext"`
}

// History filters the trader's trades by q.Period and returns page q.Page.
// A page outside the filtered range yields page 1.
func (s *Service) History(ctx context.Context, traderID string, q HistoryQuery, l *i18n.Localizer) (*History, error) {
	if _, err := s.provider.Trader(ctx, traderID); err != nil {
		return nil, fmt.Errorf("failed to get trader %s: %w", traderID, err)
	}
	all, err := s.provider.TradesByTrader(ctx, traderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trades for %s: %w", traderID, err)
	}

	filtered := trades.FilterByPeriod(all, q.Period, s.now(), s.location)
	pager := trades.NewPager(len(filtered), s.pageSize)
	pager.GoTo(q.Page)

	page := trades.Page(filtered, pager.Current(), s.pageSize)
	rows := make([]HistoryRow, 0, len(page))
	for _, t := range page {
		rows = append(rows, newHistoryRow(t, l))
	}

	return &History{
		TraderID:      traderID,
		Period:        q.Period.String(),
		Rows:          rows,
		Page:          pager.Current(),
		TotalPages:    pager.Total(),
		PageSize:      s.pageSize,
		FilteredCount: len(filtered),
		TotalCount:    len(all),
		PageNumbers:   trades.PageNumbers(pager.Current(), pager.Total()),
		HasPrev:       pager.HasPrev(),
		HasNext:       pager.HasNext(),
	}, nil
}

func newHistoryRow(t models.Trade, l *i18n.Localizer) HistoryRow {
	status := trades.Classify(t)
	return HistoryRow{
		ID:              t.ID,
		TradeNumber:     t.TradeNumber,
		Date:            t.PublishedAt(),
		Symbol:          t.Symbol(),
		Side:            t.Side(),
		Leverage:        t.Leverage(),
		ResultPercent:   t.ResultPercent,
		PnlUsdt:         t.PnlUsdt,
		ExecutionStatus: t.ExecutionStatus,
		Status:          status,
		StatusLabel:     l.T(status.MessageID()),
		ScreenshotURL:   t.OriginalPost.ScreenshotURL,
	}
}

// OtherTraders returns every trader except currentID, in provider order
func (s *Service) OtherTraders(ctx context.Context, currentID string) ([]models.Trader, error) {
	traders, err := s.provider.Traders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list traders: %w", err)
	}
	others := make([]models.Trader, 0, len(traders))
	for _, t := range traders {
		if t.ID != currentID {
			others = append(others, t)
		}
	}
	return others, nil
}

// TraderPage bundles everything the trader page renders
type TraderPage struct {
	Header  *Header         `json:"header"`
	History *History        `json:"history"`
	Others  []models.Trader `json:"others"`
}

// TraderPage builds the full trader page
func (s *Service) TraderPage(ctx context.Context, traderID string, q HistoryQuery, l *i18n.Localizer) (*TraderPage, error) {
	header, err := s.Header(ctx, traderID, l)
	if err != nil {
		return nil, err
	}
	history, err := s.History(ctx, traderID, q, l)
	if err != nil {
		return nil, err
	}
	others, err := s.OtherTraders(ctx, traderID)
	if err != nil {
		return nil, err
	}
	return &TraderPage{Header: header, History: history, Others: others}, nil
}

// EventView is a timeline event with its localized title and formatted time
type EventView struct {
	trades.Event
	Title string `json:"title"`
	Time  string `json:"time"`
}

// Detail is the trade detail view
type Detail struct {
	Trade       models.Trade    `json:"trade"`
	Status      trades.Status   `json:"status"`
	StatusLabel string          `json:"statusLabel"`
	Expired     bool            `json:"expired"`
	Timeline    trades.Timeline `json:"timeline"`
	Events      []EventView     `json:"events"`
	Approximate bool            `json:"approximate"`
}

// Result formats the trade's result percent with two decimals
func (d Detail) Result() string {
	return sign(d.Trade.ResultPercent) + decimalFixed(d.Trade.ResultPercent, 2) + "%"
}

// Pnl formats the trade's P&L
func (d Detail) Pnl() string { return SignedUsdt(d.Trade.PnlUsdt) }

// Detail builds the detail view of trade tradeID
func (s *Service) Detail(ctx context.Context, tradeID string, l *i18n.Localizer) (*Detail, error) {
	trade, err := s.provider.Trade(ctx, tradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade %s: %w", tradeID, err)
	}

	status := trades.Classify(*trade)
	timeline := trades.BuildTimeline(*trade, s.now(), s.location)
	if timeline.Approximate {
		metrics.TimelineFallback()
		s.logger.Warn("Unparseable publish time, timeline base falls back to now",
			zap.String("trade_id", trade.ID),
			zap.String("published_at", trade.PublishedAt()),
		)
	}

	events := make([]EventView, 0, len(timeline.Events))
	for _, e := range timeline.Events {
		events = append(events, EventView{
			Event: e,
			Title: l.T(e.Kind.MessageID()),
			Time:  EventTime(e.Timestamp),
		})
	}

	return &Detail{
		Trade:       *trade,
		Status:      status,
		StatusLabel: l.T(status.MessageID()),
		Expired:     status == trades.StatusExpired,
		Timeline:    timeline,
		Events:      events,
		Approximate: timeline.Approximate,
	}, nil
}

// IsNotFound reports whether err is a missing trader or trade
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
