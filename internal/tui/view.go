package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/trades"
)

// View renders the current screen
func (m Model) View() string {
	l := m.localizer()
	var b strings.Builder

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	switch {
	case m.detail != nil:
		b.WriteString(m.detailView(l))
		b.WriteString("\n")
		b.WriteString(m.help.ShortHelpView(m.keys.DetailHelp()))
	case m.data != nil:
		b.WriteString(m.traderView(l))
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	default:
		b.WriteString(m.styles.Muted.Render("..."))
	}

	return b.String() + "\n"
}

func (m Model) traderView(l *i18n.Localizer) string {
	h := m.data.Header
	hist := m.data.History
	s := m.styles

	pnl := s.Loss
	if h.Profitable {
		pnl = s.Profit
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(h.Initial+"  "+h.Trader.Name)+"  "+s.Muted.Render(h.Trader.TelegramChannel),
		s.Muted.Render(l.T("header.trackingSince")+" "+h.TrackingSince),
		"",
		s.Muted.Render(l.T("header.totalPnl")+": ")+pnl.Render(h.TotalPnl+"  "+h.TotalPnlUsdt+" USDT"),
		s.Muted.Render(l.T("header.totalTrades")+": ")+s.Text.Render(strconv.Itoa(h.Trader.TotalTrades))+
			s.Muted.Render("  "+h.WinRate+" "+l.T("header.win")),
		s.Muted.Render(l.T("header.activeTrades")+": ")+s.Text.Render(strconv.Itoa(h.Trader.ActiveTrades)),
	)

	tabs := make([]string, 0, len(trades.Periods))
	for i, p := range trades.Periods {
		label := strconv.Itoa(i+1) + " " + l.T(p.MessageID())
		if p == m.period {
			tabs = append(tabs, s.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, s.Tab.Render(label))
		}
	}

	title := s.Title.Render(l.T("history.title")) + "  " +
		s.Muted.Render(strconv.Itoa(hist.FilteredCount)+" "+l.T("history.of")+" "+strconv.Itoa(hist.TotalCount))

	var body string
	if len(hist.Rows) == 0 {
		body = s.Muted.Render(l.T("table.noTrades"))
	} else {
		body = m.table.View()
	}

	parts := []string{
		s.Card.Render(header),
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		body,
	}
	if hist.TotalPages > 1 {
		parts = append(parts, m.pagerView(l, hist))
	}
	if others := m.othersView(l); others != "" {
		parts = append(parts, others)
	}
	parts = append(parts, s.Muted.Render(l.T("footer.disclaimer")))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) pagerView(l *i18n.Localizer, hist *dashboard.History) string {
	s := m.styles
	prev, next := s.Pending, s.Pending
	if hist.HasPrev {
		prev = s.Text
	}
	if hist.HasNext {
		next = s.Text
	}

	items := []string{prev.Render("← " + l.T("pagination.previous"))}
	for _, item := range hist.PageNumbers {
		switch {
		case item.Ellipsis:
			items = append(items, s.Muted.Render("…"))
		case item.Number == hist.Page:
			items = append(items, s.ActiveTab.Render(strconv.Itoa(item.Number)))
		default:
			items = append(items, s.Tab.Render(strconv.Itoa(item.Number)))
		}
	}
	items = append(items, next.Render(l.T("pagination.next")+" →"))
	return strings.Join(items, " ")
}

func (m Model) othersView(l *i18n.Localizer) string {
	if len(m.data.Others) == 0 {
		return ""
	}
	s := m.styles
	lines := []string{s.Title.Render(l.T("otherTraders.title"))}
	for _, t := range m.data.Others {
		pnl := s.Loss
		sign := ""
		if t.IsProfitable() {
			pnl = s.Profit
			sign = "+"
		}
		lines = append(lines, t.Initial()+"  "+t.Name+"  "+s.Muted.Render(t.TelegramChannel)+"  "+
			pnl.Render(sign+dashboard.Percent(t.TotalPnlPercent))+"  "+
			s.Muted.Render(strconv.Itoa(t.TotalTrades)+" "+l.T("otherTraders.trades")))
	}
	return strings.Join(lines, "\n")
}
