package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/i18n"
	"github.com/trogers1052/trade-transparency/internal/mockdata"
	"github.com/trogers1052/trade-transparency/internal/trades"
)

func newTestModel(t *testing.T, traderID string) Model {
	t.Helper()
	store, err := mockdata.Default()
	require.NoError(t, err)
	catalog, err := i18n.New("en")
	require.NoError(t, err)

	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	service := dashboard.NewService(store, nil,
		dashboard.WithClock(func() time.Time { return now }),
		dashboard.WithLocation(time.UTC),
	)
	return New(service, catalog, traderID)
}

// drive runs cmd and feeds every resulting message back into m
func drive(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drive(t, m, c)
		}
		return m
	}
	next, nextCmd := m.Update(msg)
	return drive(t, next.(Model), nextCmd)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func started(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t, "trader-1")
	return drive(t, m, m.Init())
}

func TestInit_LoadsTraderPage(t *testing.T) {
	m := started(t)

	require.NoError(t, m.err)
	require.NotNil(t, m.data)
	assert.Equal(t, 1, m.page)
	assert.Len(t, m.table.Rows(), trades.PageSize)

	view := m.View()
	assert.Contains(t, view, "Alpha Signals")
	assert.Contains(t, view, "25 of 25")
	assert.Contains(t, view, "Other Traders")
}

func TestPeriodKeys(t *testing.T) {
	tests := []struct {
		key      rune
		period   trades.Period
		filtered int
	}{
		{'1', trades.PeriodWeek, 2},
		{'2', trades.PeriodMonth, 7},
		{'3', trades.PeriodQuarter, 22},
		{'4', trades.PeriodAll, 25},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			m := started(t)
			m = drive(t, m, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyRight} })
			require.Equal(t, 2, m.page)

			m, cmd := press(t, m, keyRune(tt.key))
			assert.Equal(t, tt.period, m.period)
			assert.Equal(t, 1, m.page)

			m = drive(t, m, cmd)
			assert.Equal(t, tt.filtered, m.data.History.FilteredCount)
			assert.Equal(t, 1, m.data.History.Page)
		})
	}
}

func TestPaging(t *testing.T) {
	m := started(t)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.page)

	for want := 2; want <= 3; want++ {
		m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m = drive(t, m, cmd)
		assert.Equal(t, want, m.data.History.Page)
	}
	assert.Len(t, m.table.Rows(), 5)

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, 3, m.page)

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = drive(t, m, cmd)
	assert.Equal(t, 2, m.data.History.Page)
}

func TestOpenAndCloseDetail(t *testing.T) {
	m := started(t)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = drive(t, m, cmd)
	assert.Equal(t, 1, m.table.Cursor())

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, m, cmd)
	require.NotNil(t, m.detail)
	assert.Equal(t, "trade-1-024", m.detail.Trade.ID)
	assert.Equal(t, trades.StatusWaiting, m.detail.Status)

	view := m.View()
	assert.Contains(t, view, "Deal Details")
	assert.Contains(t, view, "Signal received from Telegram")
	assert.Contains(t, view, "Pending")

	// filter keys are inert on the detail screen
	m, cmd = press(t, m, keyRune('1'))
	assert.Nil(t, cmd)
	assert.Equal(t, trades.PeriodAll, m.period)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.detail)
	assert.Contains(t, m.View(), "Trade History")
}

func TestDetail_Expired(t *testing.T) {
	m := started(t)
	for i := 0; i < 3; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, m, cmd)
	require.NotNil(t, m.detail)
	assert.True(t, m.detail.Expired)

	view := m.View()
	assert.Contains(t, view, "7 days limit reached")
	assert.NotContains(t, view, "Final P&L")
}

func TestToggleLocale(t *testing.T) {
	m := started(t)

	m, cmd := press(t, m, keyRune('L'))
	assert.Equal(t, language.Russian, m.locale)
	m = drive(t, m, cmd)
	assert.Contains(t, m.View(), "25 из 25")
	assert.Contains(t, m.View(), "1 июня 2026")

	m, cmd = press(t, m, keyRune('L'))
	assert.Equal(t, language.English, m.locale)
	m = drive(t, m, cmd)
	assert.Contains(t, m.View(), "25 of 25")
}

func TestToggleLocale_ReloadsDetail(t *testing.T) {
	m := started(t)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drive(t, m, cmd)
	require.NotNil(t, m.detail)

	m, cmd = press(t, m, keyRune('L'))
	m = drive(t, m, cmd)
	require.NotNil(t, m.detail)
	assert.Equal(t, "АКТИВНА", m.detail.StatusLabel)
}

func TestPeriodKeys_StaleResponseIsDropped(t *testing.T) {
	m := started(t)

	m, weekCmd := press(t, m, keyRune('1'))
	m, allCmd := press(t, m, keyRune('4'))
	require.Equal(t, trades.PeriodAll, m.period)

	// the later request answers first
	m = drive(t, m, allCmd)
	m = drive(t, m, weekCmd)

	require.NotNil(t, m.data)
	assert.Equal(t, "all", m.data.History.Period)
	assert.Equal(t, 25, m.data.History.FilteredCount)
	assert.Len(t, m.table.Rows(), trades.PageSize)
}

func TestToggleLocale_StaleResponseIsDropped(t *testing.T) {
	m := started(t)

	m, ruCmd := press(t, m, keyRune('L'))
	m, enCmd := press(t, m, keyRune('L'))
	require.Equal(t, language.English, m.locale)

	m = drive(t, m, enCmd)
	m = drive(t, m, ruCmd)
	assert.Contains(t, m.View(), "25 of 25")
}

func TestOpenDetail_StaleResponseIsDropped(t *testing.T) {
	m := started(t)

	m, firstCmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, secondCmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = drive(t, m, secondCmd)
	m = drive(t, m, firstCmd)
	require.NotNil(t, m.detail)
	assert.Equal(t, "trade-1-024", m.detail.Trade.ID)
}

func TestQuit(t *testing.T) {
	m := started(t)

	_, cmd := press(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUnknownTraderShowsError(t *testing.T) {
	m := newTestModel(t, "ghost")
	m = drive(t, m, m.Init())

	require.Error(t, m.err)
	assert.True(t, dashboard.IsNotFound(m.err))
	assert.True(t, strings.Contains(m.View(), "not found"))
}
