package colors

import "math"

// HLS conversion with the exact float steps of the reference shade tables.
// go-colorful's Hsl rounds differently in the last bit, and truncation turns
// that into an off-by-one channel on some shades.

const (
	oneThird = 1.0 / 3.0
	oneSixth = 1.0 / 6.0
	twoThird = 2.0 / 3.0
)

// mod1 is a floored modulo: the result has the sign of the divisor.
func mod1(x float64) float64 {
	m := math.Mod(x, 1.0)
	if m < 0 {
		m += 1.0
	}
	return m
}

func rgbToHLS(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sumc := maxc + minc
	rangec := maxc - minc
	l = sumc / 2.0
	if minc == maxc {
		return 0, l, 0
	}
	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2.0 - maxc - minc)
	}
	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = mod1(h / 6.0)
	return h, l, s
}

func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - (l * s)
	}
	m1 := 2.0*l - m2
	return hueChannel(m1, m2, h+oneThird), hueChannel(m1, m2, h), hueChannel(m1, m2, h-oneThird)
}

func hueChannel(m1, m2, hue float64) float64 {
	hue = mod1(hue)
	switch {
	case hue < oneSixth:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < twoThird:
		return m1 + (m2-m1)*(twoThird-hue)*6.0
	}
	return m1
}
