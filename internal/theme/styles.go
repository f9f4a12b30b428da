package theme

import (
	"github.com/charmbracelet/lipgloss"

	"plotthemes/internal/colors"
)

// Styles renders CLI and TUI output in a theme's own colors.
type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle    lipgloss.Style
	TUISubtitle lipgloss.Style
	TUIHelp     lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Selected    lipgloss.Style
	Border      lipgloss.Style
}

// Lip converts a theme color for lipgloss.
func Lip(c colors.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	s := t.spec
	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(Lip(s.DefaultGreen)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Lip(s.DefaultRed)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Lip(s.Accent1)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Lip(s.Text2)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(Lip(s.Text1)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Lip(s.Background1)).
			Background(Lip(s.Text2)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(Lip(s.Text1)),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Lip(s.Background1)).
			Background(Lip(s.Text2)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(Lip(s.Text1)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(Lip(s.Accent5)),

		Label: lipgloss.NewStyle().
			Foreground(Lip(s.Text2)).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(Lip(s.Text1)),

		Selected: lipgloss.NewStyle().
			Foreground(Lip(s.Background1)).
			Background(Lip(s.Accent1)).
			Bold(true),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lip(s.Text2)).
			Padding(1),
	}
}
