package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
	ErrThemeExists   = errors.New("theme already registered")
	ErrNoTheme       = errors.New("no theme given")
)

// Manager maps theme names to themes. It is populated up front and read on
// every SetTheme; Register is not safe for concurrent use.
type Manager struct {
	themes map[string]*Theme
	logger zerolog.Logger
}

// NewManager returns a manager holding the built-in themes.
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		themes: GetPredefinedThemes(),
		logger: logger,
	}
}

// NewEmptyManager returns a manager with no themes at all.
func NewEmptyManager(logger zerolog.Logger) *Manager {
	return &Manager{
		themes: make(map[string]*Theme),
		logger: logger,
	}
}

// Register adds t under its name. Names are unique.
func (m *Manager) Register(t *Theme) error {
	if t == nil {
		return ErrNoTheme
	}
	if _, exists := m.themes[t.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrThemeExists, t.Name())
	}
	m.themes[t.Name()] = t
	m.logger.Debug().Str("theme", t.Name()).Msg("theme registered")
	return nil
}

// GetTheme looks a theme up by name.
func (m *Manager) GetTheme(name string) (*Theme, error) {
	theme, exists := m.themes[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrThemeNotFound, name, strings.Join(m.ListThemes(), ", "))
	}
	return theme, nil
}

// ListThemes returns all registered names, sorted.
func (m *Manager) ListThemes() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Manager) ThemeExists(name string) bool {
	_, exists := m.themes[name]
	return exists
}

// GetDefaultTheme returns the registered default, or the built-in one when
// this manager does not hold it.
func (m *Manager) GetDefaultTheme() *Theme {
	if t, ok := m.themes[DefaultThemeName]; ok {
		return t
	}
	return GreenGenericTheme()
}

// Selector picks a theme either by registered name or by value.
type Selector interface {
	resolve(m *Manager) (*Theme, error)
	String() string
}

// ByName selects a registered theme.
type ByName string

func (n ByName) resolve(m *Manager) (*Theme, error) { return m.GetTheme(string(n)) }

func (n ByName) String() string { return string(n) }

// ByValue selects a theme directly; it need not be registered.
type ByValue struct {
	Theme *Theme
}

func (v ByValue) resolve(*Manager) (*Theme, error) {
	if v.Theme == nil {
		return nil, ErrNoTheme
	}
	return v.Theme, nil
}

func (v ByValue) String() string {
	if v.Theme == nil {
		return "<nil>"
	}
	return v.Theme.Name()
}

// Resolve returns the theme sel refers to.
func (m *Manager) Resolve(sel Selector) (*Theme, error) {
	if sel == nil {
		return nil, ErrNoTheme
	}
	return sel.resolve(m)
}
