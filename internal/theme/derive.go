package theme

import (
	"plotthemes/internal/colormap"
	"plotthemes/internal/colors"
	"plotthemes/internal/style"
)

// Map names are scoped by theme: "<theme>:d_<map>" for discrete maps and
// "<theme>:c_<map>" for continuous ones.
func (t *Theme) mapName(kind, name string) string {
	return t.spec.Name + ":" + kind + "_" + name
}

// DiscreteName returns the scoped name of a discrete map.
func (t *Theme) DiscreteName(name string) string { return t.mapName("d", name) }

// ContinuousName returns the scoped name of a continuous map.
func (t *Theme) ContinuousName(name string) string { return t.mapName("c", name) }

// mapSet keeps insertion order; re-adding a name replaces it in place.
type mapSet struct {
	order []colormap.Colormap
	index map[string]int
}

func (m *mapSet) put(cm colormap.Colormap) {
	if m.index == nil {
		m.index = map[string]int{}
	}
	if i, ok := m.index[cm.Name()]; ok {
		m.order[i] = cm
		return
	}
	m.index[cm.Name()] = len(m.order)
	m.order = append(m.order, cm)
}

func (t *Theme) derive() error {
	s := t.spec

	var discrete mapSet
	defaults, err := colormap.NewListed(t.DiscreteName("default"), t.ThemeColors(GroupText, GroupAccent))
	if err != nil {
		return err
	}
	highlight, err := colormap.NewListed(t.DiscreteName("highlight"), []colors.Color{s.DefaultGreen, s.DefaultYellow, s.DefaultRed})
	if err != nil {
		return err
	}
	gray, err := colormap.Shades(t.DiscreteName("gray"), s.Text1, nil)
	if err != nil {
		return err
	}
	green, err := colormap.Shades(t.DiscreteName("green"), s.Text2, nil)
	if err != nil {
		return err
	}
	discrete.put(defaults)
	discrete.put(highlight)
	discrete.put(gray)
	discrete.put(green)
	for _, c := range t.accents() {
		shades, err := colormap.Shades(t.DiscreteName(c.Name()), c, nil)
		if err != nil {
			return err
		}
		discrete.put(shades)
	}

	lightGray := gray.Colors()[0].Named("light_gray")
	diverging := func(name string, lo, hi colors.Color) (colormap.Colormap, error) {
		return colormap.Evenly(t.ContinuousName(name), lo, lightGray, hi)
	}

	var continuous mapSet
	builders := []func() (colormap.Colormap, error){
		func() (colormap.Colormap, error) { return diverging("default", s.DefaultGreen, s.DefaultYellow) },
		func() (colormap.Colormap, error) {
			return colormap.Evenly(t.ContinuousName("gray"), s.Text1, lightGray)
		},
		func() (colormap.Colormap, error) {
			return colormap.Evenly(t.ContinuousName("highlight"), highlight.Colors()...)
		},
		func() (colormap.Colormap, error) { return diverging("red_yellow", s.DefaultRed, s.DefaultYellow) },
		func() (colormap.Colormap, error) { return diverging("red_blue", s.DefaultRed, s.DefaultBlue) },
		func() (colormap.Colormap, error) { return diverging("green_yellow", s.DefaultGreen, s.DefaultYellow) },
		func() (colormap.Colormap, error) { return diverging("green_red", s.DefaultGreen, s.DefaultRed) },
		func() (colormap.Colormap, error) { return diverging("green_blue", s.DefaultGreen, s.DefaultBlue) },
		func() (colormap.Colormap, error) { return diverging("blue_yellow", s.DefaultBlue, s.DefaultYellow) },
	}
	for _, build := range builders {
		cm, err := build()
		if err != nil {
			return err
		}
		continuous.put(cm)
	}

	var reversed mapSet
	for _, cm := range continuous.order {
		reversed.put(cm.Reversed(cm.Name() + colormap.ReversedSuffix))
	}

	t.discrete = discrete.order
	t.continuous = continuous.order
	t.reversed = reversed.order
	t.byName = make(map[string]colormap.Colormap, len(t.discrete)+len(t.continuous)+len(t.reversed))
	for _, group := range [][]colormap.Colormap{t.discrete, t.continuous, t.reversed} {
		for _, cm := range group {
			t.byName[cm.Name()] = cm
		}
	}
	t.rc = t.buildRC()
	return nil
}

// DiscreteMaps returns the discrete maps in derivation order.
func (t *Theme) DiscreteMaps() []colormap.Colormap {
	return append([]colormap.Colormap(nil), t.discrete...)
}

// ContinuousMaps returns the gradients in derivation order.
func (t *Theme) ContinuousMaps() []colormap.Colormap {
	return append([]colormap.Colormap(nil), t.continuous...)
}

// ReversedMaps returns the "_r" counterpart of each gradient.
func (t *Theme) ReversedMaps() []colormap.Colormap {
	return append([]colormap.Colormap(nil), t.reversed...)
}

// ColorMaps returns every derived map: discrete, continuous, then reversed.
func (t *Theme) ColorMaps() []colormap.Colormap {
	out := make([]colormap.Colormap, 0, len(t.byName))
	out = append(out, t.discrete...)
	out = append(out, t.continuous...)
	return append(out, t.reversed...)
}

// ColorMap looks up a derived map by its scoped name.
func (t *Theme) ColorMap(name string) (colormap.Colormap, bool) {
	cm, ok := t.byName[name]
	return cm, ok
}

// Palette is the color cycle: text then accent colors.
func (t *Theme) Palette() []colors.Color {
	return t.ThemeColors(GroupText, GroupAccent)
}

// RC returns the theme's rc parameters.
func (t *Theme) RC() style.Params {
	return t.rc.Clone()
}

func (t *Theme) buildRC() style.Params {
	s := t.spec
	return style.Params{
		// font
		style.KeyFontSize:      12.0,
		style.KeyFontFamily:    s.Font,
		style.KeyFontSansSerif: s.Font,
		"legend.fontsize":      12.0,

		// lines
		"lines.color":           s.Text2,
		"lines.linewidth":       1.4,
		"lines.markerfacecolor": s.Text2,
		"lines.markeredgewidth": 0.0,
		"lines.markersize":      5.6,
		"lines.solid_capstyle":  "round",
		"patch.linewidth":       0.75,

		// ticks
		"xtick.labelsize":   10.0,
		"xtick.major.pad":   5.6,
		"xtick.major.width": 0.75,
		"xtick.minor.width": 0.75,
		"xtick.color":       s.Text1,
		"xtick.direction":   "out",
		"xtick.major.size":  1.0,
		"xtick.minor.size":  0.5,
		"ytick.labelsize":   10.0,
		"ytick.major.pad":   5.6,
		"ytick.major.width": 0.75,
		"ytick.minor.width": 0.75,
		"ytick.color":       s.Text1,
		"ytick.direction":   "out",
		"ytick.major.size":  0.0,
		"ytick.minor.size":  0.0,

		// axes
		"axes.labelsize":   16.0,
		"axes.titlesize":   16.0,
		"axes.axisbelow":   true,
		"axes.edgecolor":   s.Text1,
		"axes.labelcolor":  s.Text1,
		"axes.facecolor":   "white",
		"axes.grid":        true,
		"axes.grid.axis":   "both",
		"axes.grid.which":  "both",
		"axes.linewidth":   0.0,
		style.KeyPropCycle: t.Palette(),

		// figure
		"figure.facecolor":  "white",
		style.KeyFigureSize: style.Sizes["large"],
		style.KeyFigureDPI:  100,
		"figure.autolayout": false,

		// savefig
		"savefig.dpi":         100,
		"savefig.format":      "png",
		"savefig.bbox":        "standard",
		"savefig.transparent": true,

		// image
		style.KeyImageCmap: t.DiscreteName("default"),

		// legend
		"legend.numpoints":     1,
		"legend.scatterpoints": 1,
		"legend.fancybox":      false,
		"legend.loc":           "best",
		"legend.frameon":       true,
		"legend.framealpha":    0.7,
		"legend.facecolor":     s.Background1,
		"legend.edgecolor":     "none",

		// text
		style.KeyTextColor: s.Text1,
	}
}
