package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"plotthemes/internal/colors"
)

var (
	ErrUnknownSlot = errors.New("unknown color slot")
)

// File is the on-disk form of a custom theme:
//
//	name: my-theme
//	font: Trebuchet MS
//	colors:
//	  background1: {name: white, r: 255, g: 255, b: 255}
//	  ...
//	custom_colors:
//	  - {name: cranberry, r: 103, g: 15, b: 49}
type File struct {
	Name         string               `mapstructure:"name" yaml:"name"`
	Font         string               `mapstructure:"font" yaml:"font,omitempty"`
	Colors       map[string]FileColor `mapstructure:"colors" yaml:"colors"`
	CustomColors []FileColor          `mapstructure:"custom_colors" yaml:"custom_colors,omitempty"`
}

type FileColor struct {
	Name  string   `mapstructure:"name" yaml:"name"`
	R     int      `mapstructure:"r" yaml:"r"`
	G     int      `mapstructure:"g" yaml:"g"`
	B     int      `mapstructure:"b" yaml:"b"`
	Alpha *float64 `mapstructure:"alpha" yaml:"alpha,omitempty"`
}

func fileColor(c colors.Color) FileColor {
	r, g, b := c.RGB()
	fc := FileColor{Name: c.Name(), R: int(r), G: int(g), B: int(b)}
	if a := c.Alpha(); a < 1 {
		fc.Alpha = &a
	}
	return fc
}

func (fc FileColor) color() (colors.Color, error) {
	c, err := colors.New(fc.Name, fc.R, fc.G, fc.B)
	if err != nil {
		return colors.Color{}, err
	}
	if fc.Alpha != nil {
		c = c.WithAlpha(*fc.Alpha)
	}
	return c, nil
}

// Spec converts the file into a Spec. Missing slots are left unset so New
// reports them.
func (f File) Spec() (Spec, error) {
	s := Spec{Name: f.Name, Font: f.Font}

	slots := map[string]*colors.Color{}
	for _, sl := range s.slots() {
		slots[sl.name] = sl.color
	}

	for key, fc := range f.Colors {
		dst, ok := slots[strings.ToLower(key)]
		if !ok {
			return Spec{}, fmt.Errorf("%w: %s", ErrUnknownSlot, key)
		}
		c, err := fc.color()
		if err != nil {
			return Spec{}, fmt.Errorf("slot %s: %w", key, err)
		}
		*dst = c
	}

	for i, fc := range f.CustomColors {
		c, err := fc.color()
		if err != nil {
			return Spec{}, fmt.Errorf("custom_colors[%d]: %w", i, err)
		}
		s.CustomColors = append(s.CustomColors, c)
	}
	return s, nil
}

// File is the inverse of File.Spec: the theme in its on-disk form.
func (t *Theme) File() File {
	spec := t.Spec()
	f := File{
		Name:   spec.Name,
		Font:   spec.Font,
		Colors: make(map[string]FileColor, 14),
	}
	for _, sl := range spec.slots() {
		f.Colors[sl.name] = fileColor(*sl.color)
	}
	for _, c := range spec.CustomColors {
		f.CustomColors = append(f.CustomColors, fileColor(c))
	}
	return f
}

// LoadFile reads and builds a theme from a YAML file.
func LoadFile(path string) (*Theme, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to decode theme file %s: %w", path, err)
	}

	spec, err := f.Spec()
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}

	t, err := New(spec)
	if err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}
	return t, nil
}

// LoadDir builds every *.yaml / *.yml theme in dir. A missing dir yields no themes.
// Files that fail to load are skipped; their errors come back joined
// alongside the themes that did load.
func LoadDir(dir string) ([]*Theme, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var (
		themes []*Theme
		errs   []error
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		themes = append(themes, t)
	}
	return themes, errors.Join(errs...)
}

// LoadInto registers every theme in dir with m. Bad files and name clashes
// are logged and skipped; the count is what actually got registered.
func (m *Manager) LoadInto(dir string) (int, error) {
	themes, err := LoadDir(dir)
	errs := []error{err}
	if err != nil {
		m.logger.Warn().Err(err).Str("dir", dir).Msg("skipped unreadable theme files")
	}

	n := 0
	for _, t := range themes {
		if err := m.Register(t); err != nil {
			m.logger.Warn().Err(err).Str("theme", t.Name()).Msg("skipped custom theme")
			errs = append(errs, err)
			continue
		}
		n++
	}
	if n > 0 {
		m.logger.Info().Str("dir", dir).Int("count", n).Msg("loaded custom themes")
	}
	return n, errors.Join(errs...)
}
