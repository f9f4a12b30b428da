// Package theme builds plotting themes from a handful of semantic colors,
// derives their color maps and rc parameters, and applies them to a style sink.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"plotthemes/internal/colormap"
	"plotthemes/internal/colors"
	"plotthemes/internal/style"
)

// DefaultFont is used when a Spec leaves Font empty.
const DefaultFont = "Trebuchet MS"

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidName  = errors.New("invalid theme name")
)

// FieldError names the mandatory slot a Spec left unset.
type FieldError struct {
	Theme string
	Field string
}

func (e *FieldError) Error() string {
	if e.Theme == "" {
		return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
	}
	return fmt.Sprintf("theme %q: %s: %s", e.Theme, ErrMissingField, e.Field)
}

func (e *FieldError) Unwrap() error { return ErrMissingField }

// NameError rejects a theme name that cannot be used as a map scope or a
// file name.
type NameError struct {
	Name   string
	Reason string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidName, e.Name, e.Reason)
}

func (e *NameError) Unwrap() error { return ErrInvalidName }

// checkName keeps names usable in "<theme>:<map>" and as "<name>.yaml".
func checkName(name string) error {
	switch {
	case strings.Contains(name, ":"):
		return &NameError{Name: name, Reason: "contains ':'"}
	case strings.ContainsAny(name, `/\`):
		return &NameError{Name: name, Reason: "contains a path separator"}
	case strings.Contains(name, ".."):
		return &NameError{Name: name, Reason: "contains '..'"}
	case strings.TrimSpace(name) != name:
		return &NameError{Name: name, Reason: "has leading or trailing space"}
	}
	return nil
}

// Spec lists everything needed to build a Theme. Every color slot is
// mandatory; CustomColors is optional.
type Spec struct {
	Name string
	Font string

	// background
	Background1 colors.Color
	Background2 colors.Color

	// text
	Text1 colors.Color
	Text2 colors.Color

	// accent
	Accent1 colors.Color
	Accent2 colors.Color
	Accent3 colors.Color
	Accent4 colors.Color
	Accent5 colors.Color
	Accent6 colors.Color

	// usually repeats of accent colors
	DefaultRed    colors.Color
	DefaultGreen  colors.Color
	DefaultBlue   colors.Color
	DefaultYellow colors.Color

	CustomColors []colors.Color
}

type slot struct {
	name  string
	color *colors.Color
}

// slots returns the mandatory color slots in declaration order.
func (s *Spec) slots() []slot {
	return []slot{
		{"background1", &s.Background1},
		{"background2", &s.Background2},
		{"text1", &s.Text1},
		{"text2", &s.Text2},
		{"accent1", &s.Accent1},
		{"accent2", &s.Accent2},
		{"accent3", &s.Accent3},
		{"accent4", &s.Accent4},
		{"accent5", &s.Accent5},
		{"accent6", &s.Accent6},
		{"default_red", &s.DefaultRed},
		{"default_green", &s.DefaultGreen},
		{"default_blue", &s.DefaultBlue},
		{"default_yellow", &s.DefaultYellow},
	}
}

// SlotNames lists the mandatory color slots.
func SlotNames() []string {
	var s Spec
	slots := s.slots()
	names := make([]string, len(slots))
	for i, sl := range slots {
		names[i] = sl.name
	}
	return names
}

func (s *Spec) validate() error {
	if s.Name == "" {
		return &FieldError{Field: "name"}
	}
	if err := checkName(s.Name); err != nil {
		return err
	}
	for _, sl := range s.slots() {
		if sl.color.IsZero() {
			return &FieldError{Theme: s.Name, Field: sl.name}
		}
	}
	for i, c := range s.CustomColors {
		if c.IsZero() {
			return &FieldError{Theme: s.Name, Field: fmt.Sprintf("custom_colors[%d]", i)}
		}
	}
	return nil
}

// Theme is an immutable, validated theme with its derived color maps.
type Theme struct {
	spec Spec

	discrete   []colormap.Colormap
	continuous []colormap.Colormap
	reversed   []colormap.Colormap
	byName     map[string]colormap.Colormap

	rc style.Params
}

// New validates s and derives the theme's color maps and rc parameters.
func New(s Spec) (*Theme, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Font == "" {
		s.Font = DefaultFont
	}
	s.CustomColors = append([]colors.Color(nil), s.CustomColors...)

	t := &Theme{spec: s}
	if err := t.derive(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", s.Name, err)
	}
	return t, nil
}

func (t *Theme) Name() string { return t.spec.Name }

func (t *Theme) Font() string { return t.spec.Font }

// Spec returns a copy of the values the theme was built from.
func (t *Theme) Spec() Spec {
	s := t.spec
	s.CustomColors = append([]colors.Color(nil), t.spec.CustomColors...)
	return s
}

// SlotColor returns the color held in a mandatory slot such as "accent1".
func (t *Theme) SlotColor(slot string) (colors.Color, bool) {
	for _, sl := range t.spec.slots() {
		if sl.name == slot {
			return *sl.color, true
		}
	}
	return colors.Color{}, false
}

// Group selects a family of theme colors.
type Group int

const (
	GroupBackground Group = iota
	GroupText
	GroupAccent
)

// ThemeColors returns the colors of the requested groups, in background,
// text, accent order. No groups means all of them.
func (t *Theme) ThemeColors(groups ...Group) []colors.Color {
	want := map[Group]bool{}
	for _, g := range groups {
		want[g] = true
	}
	all := len(groups) == 0

	var out []colors.Color
	if all || want[GroupBackground] {
		out = append(out, t.spec.Background1, t.spec.Background2)
	}
	if all || want[GroupText] {
		out = append(out, t.spec.Text1, t.spec.Text2)
	}
	if all || want[GroupAccent] {
		out = append(out, t.accents()...)
	}
	return out
}

func (t *Theme) accents() []colors.Color {
	s := t.spec
	return []colors.Color{s.Accent1, s.Accent2, s.Accent3, s.Accent4, s.Accent5, s.Accent6}
}

func (t *Theme) CustomColors() []colors.Color {
	return append([]colors.Color(nil), t.spec.CustomColors...)
}

// CommonColors are identical for every theme.
func (t *Theme) CommonColors() []colors.Color {
	return colors.Common()
}

func (t *Theme) String() string {
	return t.spec.Name
}
