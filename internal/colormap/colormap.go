// Package colormap implements discrete and continuous color maps, the palettes
// a theme derives from its colors and registers with a style runtime.
package colormap

import (
	"errors"
	"fmt"
	"math"

	"plotthemes/internal/colors"
)

var (
	ErrInvalidStops = errors.New("invalid gradient stops")
	ErrEmpty        = errors.New("color map has no colors")
)

// ReversedSuffix is appended to a map name to name its reversal.
const ReversedSuffix = "_r"

// Colormap maps a position in [0,1] to a color.
type Colormap interface {
	Name() string
	// Len is the number of distinct entries: colors for a discrete map, stops
	// for a gradient.
	Len() int
	At(t float64) colors.Color
	Reversed(name string) Colormap
}

// Listed is a discrete map: an ordered list of colors.
type Listed struct {
	name   string
	colors []colors.Color
}

// NewListed copies cs into a discrete map.
func NewListed(name string, cs []colors.Color) (*Listed, error) {
	if len(cs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}
	return &Listed{name: name, colors: append([]colors.Color(nil), cs...)}, nil
}

func (l *Listed) Name() string { return l.name }

func (l *Listed) Len() int { return len(l.colors) }

// Colors returns a copy of the entries.
func (l *Listed) Colors() []colors.Color {
	return append([]colors.Color(nil), l.colors...)
}

// At returns the entry whose bucket contains t.
func (l *Listed) At(t float64) colors.Color {
	t = clamp01(t)
	i := int(t * float64(len(l.colors)))
	if i >= len(l.colors) {
		i = len(l.colors) - 1
	}
	return l.colors[i]
}

func (l *Listed) Reversed(name string) Colormap {
	out := make([]colors.Color, len(l.colors))
	for i, c := range l.colors {
		out[len(out)-1-i] = c
	}
	return &Listed{name: name, colors: out}
}

// Stop anchors a color at a position along a gradient.
type Stop struct {
	Pos   float64
	Color colors.Color
}

// Linear is a continuous gradient interpolated between stops.
type Linear struct {
	name  string
	stops []Stop
}

// NewLinear validates that stops span [0,1] in ascending order.
func NewLinear(name string, stops []Stop) (*Linear, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: %s needs at least two stops, got %d", ErrInvalidStops, name, len(stops))
	}
	if stops[0].Pos != 0 || stops[len(stops)-1].Pos != 1 {
		return nil, fmt.Errorf("%w: %s must start at 0 and end at 1", ErrInvalidStops, name)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Pos < stops[i-1].Pos {
			return nil, fmt.Errorf("%w: %s stop %d at %g precedes %g", ErrInvalidStops, name, i, stops[i].Pos, stops[i-1].Pos)
		}
	}
	return &Linear{name: name, stops: append([]Stop(nil), stops...)}, nil
}

// Evenly spreads cs over [0,1].
func Evenly(name string, cs ...colors.Color) (*Linear, error) {
	if len(cs) < 2 {
		return nil, fmt.Errorf("%w: %s needs at least two colors", ErrInvalidStops, name)
	}
	stops := make([]Stop, len(cs))
	for i, c := range cs {
		stops[i] = Stop{Pos: float64(i) / float64(len(cs)-1), Color: c}
	}
	return NewLinear(name, stops)
}

func (l *Linear) Name() string { return l.name }

func (l *Linear) Len() int { return len(l.stops) }

func (l *Linear) Stops() []Stop {
	return append([]Stop(nil), l.stops...)
}

func (l *Linear) At(t float64) colors.Color {
	t = clamp01(t)
	for i := 1; i < len(l.stops); i++ {
		lo, hi := l.stops[i-1], l.stops[i]
		if t > hi.Pos {
			continue
		}
		span := hi.Pos - lo.Pos
		if span == 0 {
			return hi.Color
		}
		return colors.Lerp(lo.Color, hi.Color, (t-lo.Pos)/span)
	}
	return l.stops[len(l.stops)-1].Color
}

// Reversed mirrors every stop around 0.5.
func (l *Linear) Reversed(name string) Colormap {
	out := make([]Stop, len(l.stops))
	for i, s := range l.stops {
		out[len(out)-1-i] = Stop{Pos: 1 - s.Pos, Color: s.Color}
	}
	return &Linear{name: name, stops: out}
}

// Sample draws n colors evenly spaced along cm, endpoints included.
func Sample(cm Colormap, n int) []colors.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []colors.Color{cm.At(0)}
	}
	out := make([]colors.Color, n)
	for i := range out {
		out[i] = cm.At(float64(i) / float64(n-1))
	}
	return out
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
