package colormap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotthemes/internal/colors"
)

var (
	red   = colors.MustNew("red", 255, 0, 0)
	black = colors.MustNew("black", 0, 0, 0)
	white = colors.MustNew("white", 255, 255, 255)
	blue  = colors.MustNew("blue", 0, 0, 255)
)

func TestNewListed(t *testing.T) {
	_, err := NewListed("empty", nil)
	require.ErrorIs(t, err, ErrEmpty)

	src := []colors.Color{red, white}
	l, err := NewListed("rw", src)
	require.NoError(t, err)
	src[0] = blue
	assert.Equal(t, "red", l.Colors()[0].Name(), "input slice must be copied")
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, "rw", l.Name())
}

func TestListedAt(t *testing.T) {
	l, err := NewListed("three", []colors.Color{red, white, blue})
	require.NoError(t, err)

	tests := []struct {
		t    float64
		want string
	}{
		{0, "red"},
		{0.2, "red"},
		{0.34, "white"},
		{0.66, "white"},
		{0.67, "blue"},
		{1, "blue"},
		{-3, "red"},
		{7, "blue"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.At(tt.t).Name(), "At(%v)", tt.t)
	}
}

func TestListedReversed(t *testing.T) {
	l, err := NewListed("three", []colors.Color{red, white, blue})
	require.NoError(t, err)

	r := l.Reversed("three_r")
	assert.Equal(t, "three_r", r.Name())
	assert.Equal(t, "blue", r.At(0).Name())
	assert.Equal(t, "red", r.At(1).Name())
	assert.Equal(t, "red", l.At(0).Name(), "original is untouched")
}

func TestNewLinearValidation(t *testing.T) {
	tests := []struct {
		name  string
		stops []Stop
	}{
		{name: "single stop", stops: []Stop{{0, red}}},
		{name: "does not start at zero", stops: []Stop{{0.1, red}, {1, blue}}},
		{name: "does not end at one", stops: []Stop{{0, red}, {0.9, blue}}},
		{name: "unsorted", stops: []Stop{{0, red}, {0.7, white}, {0.3, black}, {1, blue}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinear(tt.name, tt.stops)
			assert.ErrorIs(t, err, ErrInvalidStops)
		})
	}
}

func TestLinearAt(t *testing.T) {
	g, err := NewLinear("bw", []Stop{{0, black}, {1, white}})
	require.NoError(t, err)

	assert.Equal(t, "#000000", g.At(0).Hex())
	assert.Equal(t, "#808080", g.At(0.5).Hex())
	assert.Equal(t, "#FFFFFF", g.At(1).Hex())

	three, err := NewLinear("rwb", []Stop{{0, red}, {0.5, white}, {1, blue}})
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", three.At(0.5).Hex())
	assert.Equal(t, "#FF8080", three.At(0.25).Hex())
	assert.Equal(t, "#8080FF", three.At(0.75).Hex())
	assert.Equal(t, 3, three.Len())
}

func TestLinearReversed(t *testing.T) {
	g, err := NewLinear("rwb", []Stop{{0, red}, {0.25, white}, {1, blue}})
	require.NoError(t, err)

	r := g.Reversed("rwb" + ReversedSuffix)
	require.IsType(t, &Linear{}, r)
	stops := r.(*Linear).Stops()

	assert.Equal(t, "rwb_r", r.Name())
	assert.Equal(t, []float64{0, 0.75, 1}, []float64{stops[0].Pos, stops[1].Pos, stops[2].Pos})
	assert.Equal(t, "blue", stops[0].Color.Name())
	assert.Equal(t, "red", stops[2].Color.Name())
	assert.Equal(t, g.At(0.1).Hex(), r.At(0.9).Hex())
}

func TestEvenly(t *testing.T) {
	g, err := Evenly("trio", red, white, blue)
	require.NoError(t, err)
	stops := g.Stops()
	assert.Equal(t, 0.0, stops[0].Pos)
	assert.Equal(t, 0.5, stops[1].Pos)
	assert.Equal(t, 1.0, stops[2].Pos)

	_, err = Evenly("solo", red)
	assert.ErrorIs(t, err, ErrInvalidStops)
}

func TestSample(t *testing.T) {
	g, err := NewLinear("bw", []Stop{{0, black}, {1, white}})
	require.NoError(t, err)

	assert.Nil(t, Sample(g, 0))
	assert.Len(t, Sample(g, 1), 1)

	got := Sample(g, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "#000000", got[0].Hex())
	assert.Equal(t, "#808080", got[1].Hex())
	assert.Equal(t, "#FFFFFF", got[2].Hex())

	l, err := NewListed("two", []colors.Color{red, blue})
	require.NoError(t, err)
	got = Sample(l, 4)
	assert.Equal(t, []string{"red", "red", "blue", "blue"},
		[]string{got[0].Name(), got[1].Name(), got[2].Name(), got[3].Name()})
}

func TestEvenCuts(t *testing.T) {
	assert.Nil(t, EvenCuts(0))
	assert.Equal(t, []float64{-0.5}, EvenCuts(1))
	assert.Equal(t, []float64{0.8, -0.5}, EvenCuts(2))
	assert.Equal(t, []float64{0.8, 0.15, -0.5}, EvenCuts(3))
}

func TestShades(t *testing.T) {
	base := colors.MustNew("dark_gray", 87, 87, 87)

	l, err := Shades("gray", base, nil)
	require.NoError(t, err)
	require.Equal(t, len(DefaultCuts), l.Len())

	cs := l.Colors()
	// lightest first, darkest last
	r0, _, _ := cs[0].RGB()
	r4, _, _ := cs[4].RGB()
	assert.Greater(t, r0, uint8(87))
	assert.Less(t, r4, uint8(87))

	_, err = Shades("none", base, []float64{})
	assert.ErrorIs(t, err, ErrEmpty)

	mixed, err := Shades("mixed", base, []float64{-0.5, 0.5})
	require.NoError(t, err)
	first, _, _ := mixed.Colors()[0].RGB()
	assert.Greater(t, first, uint8(87), "lightened entries come first")
}
