package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"plotthemes/internal/display"
	"plotthemes/internal/theme"
)

// SaveFunc persists the chosen theme name.
type SaveFunc func(name string) error

// SetupModel is the interactive theme picker
type SetupModel struct {
	manager       *theme.Manager
	save          SaveFunc
	keys          keyMap
	themes        []string
	selectedIndex int
	currentTheme  *theme.Theme
	width         int
	height        int
	quitting      bool
	confirmed     bool
	err           error
}

// NewSetupModel creates a picker over every theme in manager, starting on
// initial when it exists.
func NewSetupModel(manager *theme.Manager, initial string, save SaveFunc) SetupModel {
	themes := manager.ListThemes()

	selected := 0
	for i, name := range themes {
		if name == initial {
			selected = i
			break
		}
	}

	m := SetupModel{
		manager:       manager,
		save:          save,
		keys:          defaultKeyMap(),
		themes:        themes,
		selectedIndex: selected,
		width:         100, // default width
		height:        30,  // default height
	}
	m.currentTheme = m.themeAt(selected)
	return m
}

func (m SetupModel) themeAt(i int) *theme.Theme {
	if i < 0 || i >= len(m.themes) {
		return m.manager.GetDefaultTheme()
	}
	t, err := m.manager.GetTheme(m.themes[i])
	if err != nil {
		return m.manager.GetDefaultTheme()
	}
	return t
}

// Selected is the highlighted theme name.
func (m SetupModel) Selected() string {
	return m.currentTheme.Name()
}

// Confirmed reports whether the user pressed enter.
func (m SetupModel) Confirmed() bool { return m.confirmed }

// Err is the error from saving the choice, if any.
func (m SetupModel) Err() error { return m.err }

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.currentTheme = m.themeAt(m.selectedIndex)
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.selectedIndex < len(m.themes)-1 {
				m.selectedIndex++
				m.currentTheme = m.themeAt(m.selectedIndex)
			}
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			if m.save != nil {
				m.err = m.save(m.Selected())
			}
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		return "Theme selection cancelled.\n"
	}

	// ensure minimum dimensions
	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(m.currentTheme)

	leftWidth := max(30, m.width/3)
	rightWidth := max(30, m.width-leftWidth-4)

	left := styles.Border.
		Width(leftWidth).
		Height(m.height - 4).
		Render(m.renderThemeList(styles, leftWidth))

	right := styles.Border.
		Width(rightWidth).
		Height(m.height - 4).
		Render(m.renderPreview(styles, rightWidth))

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := styles.TUITitle.Render("Plot Themes")
	subtitle := styles.TUISubtitle.Render("Select the default plotting theme")
	help := styles.TUIHelp.Render(m.keys.helpLine())

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m SetupModel) renderThemeList(styles *theme.Styles, width int) string {
	var b strings.Builder

	b.WriteString(styles.Label.Render("Available Themes"))
	b.WriteString("\n\n")

	for i, name := range m.themes {
		prefix := "  "
		if i == m.selectedIndex {
			prefix = "▶ "
		}
		line := prefix + name

		if i == m.selectedIndex {
			line = styles.Selected.Width(width - 4).Render(line)
		} else {
			line = styles.Value.Width(width - 4).Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m SetupModel) renderPreview(styles *theme.Styles, width int) string {
	var b strings.Builder
	t := m.currentTheme

	b.WriteString(styles.Label.Render("Preview"))
	b.WriteString("\n\n")
	b.WriteString(styles.Value.Render("Font: " + t.Font()))
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Color cycle"))
	b.WriteString("\n")
	for _, c := range t.Palette() {
		b.WriteString(display.Swatch(c, 3))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Gradients"))
	b.WriteString("\n")
	barWidth := max(10, width-8)
	for _, cm := range t.ContinuousMaps() {
		b.WriteString(styles.Value.Render(strings.TrimPrefix(cm.Name(), t.Name()+":")))
		b.WriteString("\n")
		b.WriteString(display.Bar(cm, barWidth))
		b.WriteString("\n")
	}

	return b.String()
}
