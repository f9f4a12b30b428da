package colormap

import (
	"math"

	"plotthemes/internal/colors"
)

// DefaultCuts mirror the tint/shade columns of PowerPoint's color panel.
var DefaultCuts = []float64{0.8, 0.6, 0.4, -0.25, -0.5}

// EvenCuts spreads n cuts from 0.8 down to -0.5, rounded to two decimals.
func EvenCuts(n int) []float64 {
	const lo, hi = -0.5, 0.8
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	cuts := make([]float64, n)
	for i := range cuts {
		v := lo + (hi-lo)*float64(i)/float64(n-1)
		cuts[n-1-i] = math.Round(v*100) / 100
	}
	return cuts
}

// Shades builds a discrete map from base: non-negative cuts lighten it,
// negative cuts darken it. Lightened entries come first.
func Shades(name string, base colors.Color, cuts []float64) (*Listed, error) {
	if cuts == nil {
		cuts = DefaultCuts
	}
	var out []colors.Color
	for _, c := range cuts {
		if c >= 0 {
			out = append(out, base.Lighten(c).Named(""))
		}
	}
	for _, c := range cuts {
		if c < 0 {
			out = append(out, base.Darken(-c).Named(""))
		}
	}
	return NewListed(name, out)
}
