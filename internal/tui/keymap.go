package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the dashboard
type KeyMap struct {
	// Global
	Quit   key.Binding
	Back   key.Binding
	Locale key.Binding

	// History table
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding

	// Period filter
	Week    key.Binding
	Month   key.Binding
	Quarter key.Binding
	All     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Locale: key.NewBinding(
			key.WithKeys("L", "l"),
			key.WithHelp("L", "language"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next page"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),

		Week: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "7d"),
		),
		Month: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "30d"),
		),
		Quarter: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "90d"),
		),
		All: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "all"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.PrevPage, k.NextPage, k.Locale, k.Quit}
}

// FullHelp returns all bindings grouped by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Back},
		{k.PrevPage, k.NextPage},
		{k.Week, k.Month, k.Quarter, k.All},
		{k.Locale, k.Quit},
	}
}

// DetailHelp returns the bindings available on the trade detail screen
func (k KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Back, k.Locale, k.Quit}
}
