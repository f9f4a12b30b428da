// Package colors holds the named RGB values themes are built from, plus the
// lightness adjustments used to derive shades.
package colors

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrChannelRange = errors.New("color channel out of range")
)

// Color is an immutable named RGB triple with an optional alpha.
// The zero value means "unset".
type Color struct {
	name  string
	r     uint8
	g     uint8
	b     uint8
	alpha float64
	valid bool
}

// New builds a color, rejecting channels outside [0,255].
func New(name string, r, g, b int) (Color, error) {
	for _, ch := range [...]struct {
		label string
		v     int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if ch.v < 0 || ch.v > 255 {
			return Color{}, fmt.Errorf("%w: %s=%d for %q", ErrChannelRange, ch.label, ch.v, name)
		}
	}

	return Color{name: name, r: uint8(r), g: uint8(g), b: uint8(b), alpha: 1, valid: true}, nil
}

// MustNew is New for package-level palettes. It panics on invalid input.
func MustNew(name string, r, g, b int) Color {
	c, err := New(name, r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// FromFloats converts normalized channels back to a color, truncating like the
// lighten/darken math does.
func FromFloats(name string, r, g, b float64) Color {
	return Color{name: name, r: toByte(r), g: toByte(g), b: toByte(b), alpha: 1, valid: true}
}

func (c Color) Name() string { return c.name }

// RGB returns the 0-255 channels.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

func (c Color) Alpha() float64 { return c.alpha }

func (c Color) IsZero() bool { return !c.valid }

// Named returns a copy of c carrying a different name.
func (c Color) Named(name string) Color {
	c.name = name
	return c
}

// WithAlpha returns a copy of c with alpha clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	c.alpha = math.Max(0, math.Min(1, a))
	return c
}

// Hex formats the color as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// Normalized returns the channels scaled to [0,1].
func (c Color) Normalized() (r, g, b float64) {
	return float64(c.r) / 255, float64(c.g) / 255, float64(c.b) / 255
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(c.alpha * 0xffff))
	r = uint32(c.r) * 0x101 * a / 0xffff
	g = uint32(c.g) * 0x101 * a / 0xffff
	b = uint32(c.b) * 0x101 * a / 0xffff
	return r, g, b, a
}

func (c Color) String() string {
	if c.name == "" {
		return c.Hex()
	}
	return fmt.Sprintf("%s(%s)", c.name, c.Hex())
}

// Lighten raises HLS lightness by factor of the remaining headroom, the way
// PowerPoint's tint cuts work. Channels are truncated back to bytes.
func (c Color) Lighten(factor float64) Color {
	h, l, s := c.hls()
	l = clamp01(l + (1-l)*factor)
	return c.fromHLS(h, l, s)
}

// Darken lowers HLS lightness by factor of its current value.
func (c Color) Darken(factor float64) Color {
	h, l, s := c.hls()
	l = clamp01(l - l*factor)
	return c.fromHLS(h, l, s)
}

func (c Color) hls() (h, l, s float64) {
	return rgbToHLS(c.Normalized())
}

func (c Color) fromHLS(h, l, s float64) Color {
	r, g, b := hlsToRGB(h, l, s)
	out := FromFloats(c.name, r, g, b)
	out.alpha = c.alpha
	return out
}

// Lerp interpolates linearly in RGB space. t is clamped to [0,1].
func Lerp(a, b Color, t float64) Color {
	t = clamp01(t)
	mixed := a.colorful().BlendRgb(b.colorful(), t)
	return Color{
		r:     roundByte(mixed.R),
		g:     roundByte(mixed.G),
		b:     roundByte(mixed.B),
		alpha: a.alpha + (b.alpha-a.alpha)*t,
		valid: true,
	}
}

func (c Color) colorful() colorful.Color {
	r, g, b := c.Normalized()
	return colorful.Color{R: r, G: g, B: b}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// toByte truncates, so 128.99 becomes 128.
func toByte(v float64) uint8 {
	return uint8(clamp01(v) * 255)
}

func roundByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
