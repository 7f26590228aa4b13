package trades

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trogers1052/trade-transparency/internal/models"
)

// EventKind names a stage of the synthesized trade timeline
type EventKind string

const (
	SignalReceived EventKind = "SIGNAL_RECEIVED"
	PositionOpened EventKind = "POSITION_OPENED"
	TP1Hit         EventKind = "TP1_HIT"
	StopMoved      EventKind = "STOP_MOVED"
	TP2Hit         EventKind = "TP2_HIT"
	TradeClosed    EventKind = "TRADE_CLOSED"
)

// EventCount is the fixed length of every timeline
const EventCount = 6

// EventOrder is the order events always appear in
var EventOrder = [EventCount]EventKind{
	SignalReceived, PositionOpened, TP1Hit, StopMoved, TP2Hit, TradeClosed,
}

// Synthesized pacing of each stage relative to the publish time
var eventOffsets = [EventCount]time.Duration{
	0,
	15 * time.Minute,
	2 * time.Hour,
	2*time.Hour + 5*time.Minute,
	5 * time.Hour,
	12 * time.Hour,
}

const (
	// TP2ThresholdPercent is the result above which a profitable trade is shown reaching TP2
	TP2ThresholdPercent = 15.0
	// DefaultPositionSize is the notional assumed when a trade has none recorded
	DefaultPositionSize = 100.0
	// TP1ClosedPercent is the share of the position closed at TP1
	TP1ClosedPercent = 33.0
)

var (
	tp1Share = decimal.RequireFromString("0.33")
	tp2Share = decimal.RequireFromString("0.67")
)

// SignalReceivedData is the payload of SIGNAL_RECEIVED
type SignalReceivedData struct {
	Price float64 `json:"price"`
}

// PositionOpenedData is the payload of POSITION_OPENED
type PositionOpenedData struct {
	EntryPrice   float64     `json:"entryPrice"`
	PositionSize float64     `json:"positionSize"`
	AssetVolume  float64     `json:"assetVolume"`
	Asset        string      `json:"asset"`
	Direction    models.Side `json:"direction"`
	TakeProfits  []float64   `json:"tpLevels"`
	StopLoss     float64     `json:"slLevel"`
}

// TakeProfitData is the payload of TP1_HIT and TP2_HIT
type TakeProfitData struct {
	Price         *float64 `json:"price,omitempty"`
	ClosedPercent float64  `json:"closedPercent,omitempty"`
	ClosedAmount  float64  `json:"closedAmount"`
	Pnl           float64  `json:"pnl"`
	PnlPercent    *float64 `json:"pnlPercent,omitempty"`
}

// StopMovedData is the payload of STOP_MOVED
type StopMovedData struct {
	NewStopLoss float64 `json:"newSlLevel"`
}

// ClosedData is the payload of TRADE_CLOSED
type ClosedData struct {
	TotalPnl    float64 `json:"totalPnl"`
	TotalReturn float64 `json:"totalReturn"`
}

// Event is one stage of a timeline. Events that have not occurred carry no
// timestamp and no payload.
type Event struct {
	Kind       EventKind           `json:"status"`
	Occurred   bool                `json:"occurred"`
	Timestamp  *time.Time          `json:"timestamp,omitempty"`
	Signal     *SignalReceivedData `json:"signal,omitempty"`
	Opened     *PositionOpenedData `json:"opened,omitempty"`
	TakeProfit *TakeProfitData     `json:"takeProfit,omitempty"`
	StopMoved  *StopMovedData      `json:"stopMoved,omitempty"`
	Closed     *ClosedData         `json:"closed,omitempty"`
}

// MessageID returns the translation key of the event title
func (k EventKind) MessageID() string {
	switch k {
	case SignalReceived:
		return "event.signalReceived"
	case PositionOpened:
		return "event.positionOpened"
	case TP1Hit:
		return "event.tp1Hit"
	case StopMoved:
		return "event.stopMoved"
	case TP2Hit:
		return "event.tp2Hit"
	default:
		return "event.tradeClosed"
	}
}

// Timeline is the synthesized six-stage narrative of a trade
type Timeline struct {
	Base time.Time `json:"base"`

	// Approximate is set when the publish time could not be parsed and the
	// base fell back to the current time.
	Approximate bool              `json:"approximate"`
	Events      [EventCount]Event `json:"events"`
}

// Event returns the event of the given kind
func (tl Timeline) Event(kind EventKind) Event {
	for _, e := range tl.Events {
		if e.Kind == kind {
			return e
		}
	}
	return Event{Kind: kind}
}

// Flags are the occurrence conditions derived from a trade's final state
type Flags struct {
	Opened    bool
	Closed    bool
	Profit    bool
	TP1       bool
	StopMoved bool
	TP2       bool
}

// DeriveFlags computes which timeline stages a trade has reached. TP1 and the
// stop move always co-occur, and TP2 implies TP1.
func DeriveFlags(t models.Trade) Flags {
	closed := t.ExecutionStatus == models.ExecutionClosed
	profit := t.ResultPercent > 0
	tp1 := closed && profit
	return Flags{
		Opened:    valueOf(t.ActualEntryPrice) != 0 || closed,
		Closed:    closed,
		Profit:    profit,
		TP1:       tp1,
		StopMoved: tp1,
		TP2:       tp1 && t.ResultPercent > TP2ThresholdPercent,
	}
}

// BuildTimeline synthesizes the fixed six-event timeline of a trade. It never
// consults recorded history. now is used as the base only when the publish
// time cannot be parsed; loc is the zone publish times are expressed in.
func BuildTimeline(t models.Trade, now time.Time, loc *time.Location) Timeline {
	tl := Timeline{}
	base, err := ParsePublishedAt(t.PublishedAt(), loc)
	if err != nil {
		base = now
		tl.Approximate = true
	}
	tl.Base = base

	flags := DeriveFlags(t)
	occurred := [EventCount]bool{true, flags.Opened, flags.TP1, flags.StopMoved, flags.TP2, flags.Closed}

	entryPrice := displayEntryPrice(t)
	positionSize := DefaultPositionSize
	if v := valueOf(t.EntryAmountUsdt); v != 0 {
		positionSize = v
	}
	assetVolume := valueOf(t.AssetVolume)
	if assetVolume == 0 && entryPrice != 0 && models.IsFinite(entryPrice) {
		assetVolume = toDecimal(positionSize).
			DivRound(toDecimal(entryPrice), 6).
			InexactFloat64()
	}

	for i, kind := range EventOrder {
		ev := Event{Kind: kind, Occurred: occurred[i]}
		if !ev.Occurred {
			tl.Events[i] = ev
			continue
		}
		ts := base.Add(eventOffsets[i])
		ev.Timestamp = &ts

		switch kind {
		case SignalReceived:
			ev.Signal = &SignalReceivedData{Price: referencePrice(t, entryPrice)}
		case PositionOpened:
			ev.Opened = &PositionOpenedData{
				EntryPrice:   entryPrice,
				PositionSize: positionSize,
				AssetVolume:  assetVolume,
				Asset:        t.Base(),
				Direction:    t.Side(),
				TakeProfits:  t.TakeProfitPrices(),
				StopLoss:     t.StopLossPrice(),
			}
		case TP1Hit:
			pnlPercent := share(t.ResultPercent, tp1Share)
			ev.TakeProfit = &TakeProfitData{
				Price:         takeProfitAt(t, 0),
				ClosedPercent: TP1ClosedPercent,
				ClosedAmount:  share(positionSize, tp1Share),
				Pnl:           share(t.PnlUsdt, tp1Share),
				PnlPercent:    &pnlPercent,
			}
		case StopMoved:
			ev.StopMoved = &StopMovedData{NewStopLoss: entryPrice}
		case TP2Hit:
			ev.TakeProfit = &TakeProfitData{
				Price:        takeProfitAt(t, 1),
				ClosedAmount: share(positionSize, tp2Share),
				Pnl:          share(t.PnlUsdt, tp2Share),
			}
		case TradeClosed:
			ev.Closed = &ClosedData{TotalPnl: t.PnlUsdt, TotalReturn: t.ResultPercent}
		}
		tl.Events[i] = ev
	}

	return tl
}

// displayEntryPrice prefers the actual fill, then the top of the entry range,
// then the point price, then the accessor fallback. Zero values fall through.
func displayEntryPrice(t models.Trade) float64 {
	if v := valueOf(t.ActualEntryPrice); v != 0 {
		return v
	}
	entry := t.ParsedSignal.Signal.Entry
	if entry.Range != nil && entry.Range.High != 0 {
		return entry.Range.High
	}
	if v := valueOf(entry.Price); v != 0 {
		return v
	}
	return t.EntryPrice()
}

func referencePrice(t models.Trade, fallback float64) float64 {
	entry := t.ParsedSignal.Signal.Entry
	if entry.Range != nil && entry.Range.High != 0 {
		return entry.Range.High
	}
	if v := valueOf(entry.Price); v != 0 {
		return v
	}
	return fallback
}

func takeProfitAt(t models.Trade, n int) *float64 {
	price, ok := t.TakeProfitPrice(n)
	if !ok {
		return nil
	}
	return &price
}

func share(v float64, portion decimal.Decimal) float64 {
	return toDecimal(v).Mul(portion).InexactFloat64()
}

// toDecimal treats NaN and infinities as zero
func toDecimal(v float64) decimal.Decimal {
	if !models.IsFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func valueOf(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
