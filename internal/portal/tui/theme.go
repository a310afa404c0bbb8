package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the portal palette.
type Theme struct {
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Border  string
	FocusBg string
}

// DefaultTheme is the brand palette.
func DefaultTheme() Theme {
	return Theme{
		Text:    "#E6EDF3",
		Muted:   "#8B949E",
		Faint:   "#484F58",
		Accent:  "#2F81F7",
		Success: "#3FB950",
		Warning: "#D29922",
		Danger:  "#F85149",
		Border:  "#30363D",
		FocusBg: "#1F2A3A",
	}
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Faint    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Box      lipgloss.Style
	BoxFocus lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			MarginBottom(1),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Strikethrough(true),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
		TabOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.FocusBg)).
			Bold(true).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		BoxFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 1),
	}
}
