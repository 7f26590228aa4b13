// Package tui is a terminal rendition of the trader dashboard.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/trades"
)

const loadTimeout = 5 * time.Second

// Model is the dashboard state. It is updated by replacement: Update returns
// a new Model and never mutates shared state.
type Model struct {
	service  *dashboard.Service
	catalog  *i18n.Catalog
	locale   language.Tag
	traderID string

	keys   KeyMap
	styles Styles
	table  table.Model
	help   help.Model

	period  trades.Period
	page    int
	data    *dashboard.TraderPage
	// opening is the trade whose detail was last requested
	opening string
	detail  *dashboard.Detail
	err     error
	width   int
}

// Load results carry what they answer so stale ones can be dropped
type pageLoadedMsg struct {
	query  dashboard.HistoryQuery
	locale language.Tag
	page   *dashboard.TraderPage
	err    error
}

type detailLoadedMsg struct {
	tradeID string
	locale  language.Tag
	detail  *dashboard.Detail
	err     error
}

// New creates a dashboard model for traderID, showing all time, page 1
func New(service *dashboard.Service, catalog *i18n.Catalog, traderID string) Model {
	m := Model{
		service:  service,
		catalog:  catalog,
		locale:   catalog.Default(),
		traderID: traderID,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		help:     help.New(),
		period:   trades.PeriodAll,
		page:     1,
	}
	m.table = table.New(
		table.WithColumns(columns(m.localizer())),
		table.WithFocused(true),
		table.WithHeight(trades.PageSize+1),
	)
	return m
}

// Init loads the first page
func (m Model) Init() tea.Cmd {
	return m.loadPage()
}

func (m Model) localizer() *i18n.Localizer {
	return m.catalog.Localizer(m.locale)
}

func (m Model) query() dashboard.HistoryQuery {
	return dashboard.HistoryQuery{Period: m.period, Page: m.page}
}

func (m Model) loadPage() tea.Cmd {
	service, traderID, locale, l := m.service, m.traderID, m.locale, m.localizer()
	query := m.query()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		page, err := service.TraderPage(ctx, traderID, query, l)
		return pageLoadedMsg{query: query, locale: locale, page: page, err: err}
	}
}

func (m Model) loadDetail(tradeID string) tea.Cmd {
	service, locale, l := m.service, m.locale, m.localizer()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		detail, err := service.Detail(ctx, tradeID, l)
		return detailLoadedMsg{tradeID: tradeID, locale: locale, detail: detail, err: err}
	}
}

// Update handles messages and returns the next model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case pageLoadedMsg:
		if msg.query != m.query() || msg.locale != m.locale {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.data = msg.page
		m.page = msg.page.History.Page
		m.table.SetColumns(columns(m.localizer()))
		m.table.SetRows(rows(msg.page.History))
		if m.table.Cursor() >= len(msg.page.History.Rows) {
			m.table.SetCursor(0)
		}
		return m, nil

	case detailLoadedMsg:
		if msg.tradeID != m.opening || msg.locale != m.locale {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.detail = msg.detail
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Locale):
		m.locale = m.nextLocale()
		cmds := []tea.Cmd{m.loadPage()}
		if m.opening != "" {
			cmds = append(cmds, m.loadDetail(m.opening))
		}
		return m, tea.Batch(cmds...)
	}

	if m.detail != nil {
		if key.Matches(msg, m.keys.Back) {
			m.detail = nil
			m.opening = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Week):
		return m.selectPeriod(trades.PeriodWeek)
	case key.Matches(msg, m.keys.Month):
		return m.selectPeriod(trades.PeriodMonth)
	case key.Matches(msg, m.keys.Quarter):
		return m.selectPeriod(trades.PeriodQuarter)
	case key.Matches(msg, m.keys.All):
		return m.selectPeriod(trades.PeriodAll)

	case key.Matches(msg, m.keys.PrevPage):
		if m.data == nil || !m.data.History.HasPrev {
			return m, nil
		}
		m.page--
		return m, m.loadPage()

	case key.Matches(msg, m.keys.NextPage):
		if m.data == nil || !m.data.History.HasNext {
			return m, nil
		}
		m.page++
		return m, m.loadPage()

	case key.Matches(msg, m.keys.Open):
		if m.data == nil || len(m.data.History.Rows) == 0 {
			return m, nil
		}
		cursor := m.table.Cursor()
		if cursor < 0 || cursor >= len(m.data.History.Rows) {
			return m, nil
		}
		m.opening = m.data.History.Rows[cursor].ID
		return m, m.loadDetail(m.opening)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectPeriod changes the filter and returns to the first page
func (m Model) selectPeriod(p trades.Period) (tea.Model, tea.Cmd) {
	m.period = p
	m.page = 1
	m.table.SetCursor(0)
	return m, m.loadPage()
}

func (m Model) nextLocale() language.Tag {
	for i, tag := range i18n.Supported {
		if tag == m.locale {
			return i18n.Supported[(i+1)%len(i18n.Supported)]
		}
	}
	return i18n.Supported[0]
}

func columns(l *i18n.Localizer) []table.Column {
	return []table.Column{
		{Title: l.T("table.number"), Width: 4},
		{Title: l.T("table.date"), Width: 19},
		{Title: l.T("table.pair"), Width: 10},
		{Title: l.T("table.direction"), Width: 9},
		{Title: l.T("table.leverage"), Width: 8},
		{Title: l.T("table.result"), Width: 8},
		{Title: l.T("table.pnl"), Width: 9},
		{Title: l.T("table.status"), Width: 10},
	}
}

func rows(h *dashboard.History) []table.Row {
	out := make([]table.Row, 0, len(h.Rows))
	for _, r := range h.Rows {
		out = append(out, table.Row{
			"#" + strconv.Itoa(r.TradeNumber),
			r.Date,
			r.Symbol,
			string(r.Side),
			r.LeverageText(),
			r.Result(),
			r.Pnl(),
			r.StatusLabel,
		})
	}
	return out
}
