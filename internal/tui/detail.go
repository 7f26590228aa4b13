package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/models"
)

func (m Model) detailView(l *i18n.Localizer) string {
	d := m.detail
	t := d.Trade
	s := m.styles

	side := s.Loss
	if t.Side() == models.SideLong {
		side = s.Profit
	}
	title := s.Title.Render(t.Symbol()) + " " + side.Render(string(t.Side())) + " " +
		s.Muted.Render(dashboard.Leverage(t.Leverage())) + "  " + s.Badge.Render(d.StatusLabel)

	signal := t.ParsedSignal.Signal
	details := []string{
		s.Title.Render(l.T("modal.dealDetails")),
		s.Muted.Render(l.T("modal.market")+": ") + string(signal.Market),
		s.Muted.Render(l.T("modal.confidence")+": ") + dashboard.Ratio(t.Confidence()),
		s.Muted.Render(l.T("modal.entryZone")+": ") + entryZone(t),
		s.Muted.Render(l.T("modal.takeProfits")+": ") + joinPrices(t.TakeProfitPrices()),
		s.Muted.Render(l.T("modal.stopLoss")+": ") + dashboard.Price(t.StopLossPrice()) + " " + s.Muted.Render("("+stopKind(l, signal.StopLoss.Hard)+")"),
	}

	var outcome string
	if d.Expired {
		outcome = lipgloss.JoinVertical(lipgloss.Left,
			s.Warning.Render(l.T("modal.expiredReason")),
			s.Muted.Render(l.T("modal.expiredDescription")),
		)
	} else {
		outcome = s.Muted.Render(l.T("modal.finalPnl")+": ") +
			s.Signed(t.ResultPercent).Render(d.Result()+"  "+d.Pnl()+" USDT")
	}

	log := []string{s.Title.Render(l.T("modal.publicTradeLog"))}
	if d.Approximate {
		log = append(log, s.Warning.Render(l.T("modal.approximateTimes")))
	}
	for _, e := range d.Events {
		log = append(log, m.eventView(l, e)...)
	}

	parts := []string{
		title,
		s.Muted.Render("#" + strconv.Itoa(t.TradeNumber) + "  " + t.PublishedAt()),
		s.Card.Render(strings.Join(details, "\n")),
		s.Card.Render(outcome),
		strings.Join(log, "\n"),
	}
	if link := t.ParsedSignal.Source.MessageLink; link != "" {
		parts = append(parts, s.Muted.Render(l.T("modal.telegramLink")+": "+link))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) eventView(l *i18n.Localizer, e dashboard.EventView) []string {
	s := m.styles
	if !e.Occurred {
		return []string{s.Pending.Render("○ " + e.Title + "  " + l.T("event.pending"))}
	}

	lines := []string{s.Profit.Render("●") + " " + s.Text.Render(e.Title) + "  " + s.Muted.Render(e.Time)}
	detail := func(label, value string) {
		lines = append(lines, "    "+s.Muted.Render(label+": ")+value)
	}

	if p := e.Signal; p != nil {
		detail(l.T("timeline.price"), dashboard.Price(p.Price))
	}
	if p := e.Opened; p != nil {
		detail(l.T("timeline.entryPrice"), dashboard.Price(p.EntryPrice))
		detail(l.T("timeline.positionSize"), dashboard.Amount(p.PositionSize)+" USDT")
		verb := l.T("timeline.sold")
		if p.Direction == models.SideLong {
			verb = l.T("timeline.bought")
		}
		detail(verb, dashboard.Price(p.AssetVolume)+" "+p.Asset)
		detail(l.T("timeline.tp"), joinPrices(p.TakeProfits))
		detail(l.T("timeline.sl"), dashboard.Price(p.StopLoss))
	}
	if p := e.TakeProfit; p != nil {
		if p.Price != nil {
			detail(l.T("timeline.price"), dashboard.Price(*p.Price))
		}
		if p.ClosedPercent > 0 {
			detail(l.T("timeline.closed"), dashboard.Price(p.ClosedPercent)+"%")
		}
		detail(l.T("timeline.closedAmount"), dashboard.Amount(p.ClosedAmount)+" USDT")
		pnl := dashboard.SignedUsdt(p.Pnl) + " USDT"
		if p.PnlPercent != nil {
			pnl += " (" + dashboard.SignedPercent(*p.PnlPercent) + ")"
		}
		detail(l.T("timeline.pnl"), pnl)
	}
	if p := e.StopMoved; p != nil {
		detail(l.T("timeline.newSl"), dashboard.Price(p.NewStopLoss)+" ("+l.T("timeline.breakeven")+")")
	}
	if p := e.Closed; p != nil {
		detail(l.T("timeline.totalPnl"), dashboard.SignedUsdt(p.TotalPnl)+" USDT")
		detail(l.T("timeline.totalReturn"), dashboard.SignedPercent(p.TotalReturn))
	}
	return lines
}

func entryZone(t models.Trade) string {
	entry := t.ParsedSignal.Signal.Entry
	switch {
	case entry.Range != nil:
		return dashboard.Price(entry.Range.Low) + " - " + dashboard.Price(entry.Range.High)
	case entry.Price != nil:
		return dashboard.Price(*entry.Price)
	default:
		return string(entry.Type)
	}
}

func joinPrices(prices []float64) string {
	out := make([]string, 0, len(prices))
	for _, p := range prices {
		out = append(out, dashboard.Price(p))
	}
	return strings.Join(out, ", ")
}

func stopKind(l *i18n.Localizer, hard bool) string {
	if hard {
		return l.T("modal.hard")
	}
	return l.T("modal.soft")
}
