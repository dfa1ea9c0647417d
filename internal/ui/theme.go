package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of named colors a theme draws from.
type Palette struct {
	Base, Panel, PanelAlt lipgloss.Color
	Select, OnSelect      lipgloss.Color
	Frame                 lipgloss.Color
	Fg, Dim, Dimmer       lipgloss.Color
	Blue, Green, Yellow   lipgloss.Color
	Red, Cyan             lipgloss.Color
}

// Theme pairs a palette with the badge colors used for item statuses.
type Theme struct {
	Name    string
	Palette Palette

	// StatusColors maps a catalog status label to its badge color.
	StatusColors map[string]lipgloss.Color
}

// Styles contains the pre-built styles a frame is rendered with.
type Styles struct {
	Text, MutedText, FaintText          lipgloss.Style
	AccentText, WarningText, DangerText lipgloss.Style
	Header, Footer, Logo, SessionBar    lipgloss.Style
	Help, HelpKey                       lipgloss.Style
	Cursor, Checked, Disabled           lipgloss.Style
	badges                              map[string]lipgloss.Style
	fallbackBadge                       lipgloss.Style
}

func fg(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

func bar(bg, text lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(text).Padding(0, 1)
}

func badge(p Palette, c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Base).Background(c).Padding(0, 1)
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	p := t.Palette
	s := Styles{
		Text:        fg(p.Fg),
		MutedText:   fg(p.Dim),
		FaintText:   fg(p.Dimmer),
		AccentText:  fg(p.Blue),
		WarningText: fg(p.Yellow),
		DangerText:  fg(p.Red).Bold(true),

		Header:     bar(p.Panel, p.Fg),
		Footer:     bar(p.Panel, p.Dim),
		Logo:       fg(p.Yellow).Bold(true),
		SessionBar: bar(p.PanelAlt, p.Blue).Bold(true),

		Help:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Frame).Padding(1, 2),
		HelpKey: fg(p.Yellow),

		Cursor:   lipgloss.NewStyle().Background(p.Select).Foreground(p.OnSelect),
		Checked:  fg(p.Green).Bold(true),
		Disabled: fg(p.Dimmer).Strikethrough(true),

		badges:        make(map[string]lipgloss.Style, len(t.StatusColors)),
		fallbackBadge: badge(p, p.Dim),
	}
	for label, c := range t.StatusColors {
		s.badges[label] = badge(p, c)
	}
	return s
}

// StatusStyle returns the badge style for a status label. Unknown labels get
// the palette's dim color.
func (s Styles) StatusStyle(label string) lipgloss.Style {
	if st, ok := s.badges[label]; ok {
		return st
	}
	return s.fallbackBadge
}

var themeOrder = []Theme{nightfox, gruvbox, nord}

// GetTheme returns the theme called name, or the first theme when no such
// theme exists.
func GetTheme(name string) Theme {
	for _, t := range themeOrder {
		if t.Name == name {
			return t
		}
	}
	return themeOrder[0]
}

// NextTheme returns the name of the theme after current, wrapping around.
func NextTheme(current string) string {
	for i, t := range themeOrder {
		if t.Name == current {
			return themeOrder[(i+1)%len(themeOrder)].Name
		}
	}
	return themeOrder[0].Name
}

func ThemeNames() []string {
	names := make([]string, len(themeOrder))
	for i, t := range themeOrder {
		names[i] = t.Name
	}
	return names
}

// statusBadges maps each status label onto a palette slot.
func statusBadges(p Palette, inProgress lipgloss.Color) map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		"ready":       p.Dim,
		"queued":      p.Cyan,
		"running":     p.Blue,
		"in progress": inProgress,
		"done":        p.Green,
		"failed":      p.Red,
		"review":      p.Yellow,
	}
}

// https://github.com/EdenEast/nightfox.nvim
var nightfoxPalette = Palette{
	Base: "#131a24", Panel: "#192330", PanelAlt: "#212e3f",
	Select: "#2b3b51", OnSelect: "#cdcecf",
	Frame: "#39506d",
	Fg: "#cdcecf", Dim: "#738091", Dimmer: "#71839b",
	Blue: "#719cd6", Green: "#81b29a", Yellow: "#dbc074",
	Red: "#c94f6d", Cyan: "#63cdcf",
}

var nightfox = Theme{
	Name:         "Nightfox",
	Palette:      nightfoxPalette,
	StatusColors: statusBadges(nightfoxPalette, "#9d79d6"),
}

// https://github.com/morhetz/gruvbox (dark, medium contrast)
var gruvboxPalette = Palette{
	Base: "#1d2021", Panel: "#282828", PanelAlt: "#3c3836",
	Select: "#504945", OnSelect: "#fbf1c7",
	Frame: "#665c54",
	Fg: "#ebdbb2", Dim: "#a89984", Dimmer: "#7c6f64",
	Blue: "#83a598", Green: "#b8bb26", Yellow: "#fabd2f",
	Red: "#fb4934", Cyan: "#8ec07c",
}

var gruvbox = Theme{
	Name:         "Gruvbox",
	Palette:      gruvboxPalette,
	StatusColors: statusBadges(gruvboxPalette, "#d3869b"),
}

// https://www.nordtheme.com/docs/colors-and-palettes
var nordPalette = Palette{
	Base: "#242933", Panel: "#2e3440", PanelAlt: "#3b4252",
	Select: "#434c5e", OnSelect: "#eceff4",
	Frame: "#4c566a",
	Fg: "#d8dee9", Dim: "#a3abb9", Dimmer: "#616e88",
	Blue: "#81a1c1", Green: "#a3be8c", Yellow: "#ebcb8b",
	Red: "#bf616a", Cyan: "#88c0d0",
}

var nord = Theme{
	Name:         "Nord",
	Palette:      nordPalette,
	StatusColors: statusBadges(nordPalette, "#b48ead"),
}
