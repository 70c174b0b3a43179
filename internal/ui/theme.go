package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Amii911/AlgoTrack/internal/api"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string
	FocusBg    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Per-enum colors
	DifficultyColors map[api.Difficulty]string
	StatusColors     map[api.Status]string
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Faint:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		FocusBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		theme: t,
	}
}

// Styles contains pre-built lipgloss styles for a theme.
type Styles struct {
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Faint  lipgloss.Style
	Accent lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style

	Box      lipgloss.Style
	FocusBox lipgloss.Style
	Selected lipgloss.Style

	theme Theme
}

// Difficulty returns a style colored for the given difficulty.
func (s Styles) Difficulty(d api.Difficulty) lipgloss.Style {
	if color, ok := s.theme.DifficultyColors[d]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return s.Text
}

// Status returns a style colored for the given progress status.
func (s Styles) Status(st api.Status) lipgloss.Style {
	if color, ok := s.theme.StatusColors[st]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return s.Text
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#343746",
		FocusBg:       "#3c3f51",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
		Border:        "#44475a",
		BorderFocus:   "#bd93f9",
		Text:          "#f8f8f2",
		Muted:         "#9ea8c7",
		Faint:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		DifficultyColors: map[api.Difficulty]string{
			api.DifficultyEasy:   "#50fa7b",
			api.DifficultyMedium: "#f1fa8c",
			api.DifficultyHard:   "#ff5555",
		},
		StatusColors: map[api.Status]string{
			api.StatusCompleted: "#50fa7b",
			api.StatusAttempted: "#8be9fd",
			api.StatusSkipped:   "#6272a4",
		},
	},
	{
		Name:          "Gruvbox",
		Background:    "#282828",
		Surface:       "#3c3836",
		FocusBg:       "#504945",
		SelectionBg:   "#504945",
		SelectionText: "#fbf1c7",
		Border:        "#504945",
		BorderFocus:   "#d79921",
		Text:          "#ebdbb2",
		Muted:         "#bdae93",
		Faint:         "#928374",
		Accent:        "#d79921",
		Success:       "#b8bb26",
		Warning:       "#fabd2f",
		Danger:        "#fb4934",
		DifficultyColors: map[api.Difficulty]string{
			api.DifficultyEasy:   "#b8bb26",
			api.DifficultyMedium: "#fabd2f",
			api.DifficultyHard:   "#fb4934",
		},
		StatusColors: map[api.Status]string{
			api.StatusCompleted: "#b8bb26",
			api.StatusAttempted: "#83a598",
			api.StatusSkipped:   "#928374",
		},
	},
}

// themeByName returns the named theme, defaulting to the first theme
// when the name is unknown.
func themeByName(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// nextTheme cycles through the available themes.
func nextTheme(current string) Theme {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
