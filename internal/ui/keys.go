package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Selection
	Click         key.Binding
	LongClick     key.Binding
	Finish        key.Binding
	Clear         key.Binding
	CheckAll      key.Binding
	ToggleEnabled key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),

		// Selection
		Click: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("Space", "Click item"),
		),
		LongClick: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Long-press item"),
		),
		Finish: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Finish selection"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear selection"),
		),
		CheckAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Check all"),
		),
		ToggleEnabled: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Toggle disabled filter"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.LongClick, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Click, k.LongClick, k.Finish, k.Clear, k.CheckAll, k.ToggleEnabled},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// helpSectionTitles names the groups returned by FullHelp.
var helpSectionTitles = []string{"Navigation", "Selection", "General"}
