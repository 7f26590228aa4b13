package tui

import "github.com/charmbracelet/lipgloss"

var (
	cyan    = lipgloss.Color("#00E5FF")
	green   = lipgloss.Color("#2AFFAA")
	red     = lipgloss.Color("#FF5555")
	yellow  = lipgloss.Color("#FFB500")
	muted   = lipgloss.Color("#6C7280")
	text    = lipgloss.Color("#ECEFF4")
	surface = lipgloss.Color("#262831")
)

// Styles holds the lipgloss styles of the dashboard
type Styles struct {
	Title     lipgloss.Style
	Card      lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style
	Profit    lipgloss.Style
	Loss      lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Badge     lipgloss.Style
	Pending   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
}

// DefaultStyles returns the default dashboard styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(cyan).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),

		Muted:  lipgloss.NewStyle().Foreground(muted),
		Text:   lipgloss.NewStyle().Foreground(text),
		Profit: lipgloss.NewStyle().Foreground(green).Bold(true),
		Loss:   lipgloss.NewStyle().Foreground(red).Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(surface).
			Background(cyan).
			Bold(true).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(text).
			Background(surface).
			Padding(0, 1),

		Pending: lipgloss.NewStyle().Foreground(muted).Faint(true),
		Warning: lipgloss.NewStyle().Foreground(yellow),
		Error:   lipgloss.NewStyle().Foreground(red).Bold(true),
	}
}

// Signed picks the profit or loss style by the sign of v; zero is muted
func (s Styles) Signed(v float64) lipgloss.Style {
	switch {
	case v > 0:
		return s.Profit
	case v < 0:
		return s.Loss
	default:
		return s.Muted
	}
}
