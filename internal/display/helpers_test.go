package display

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotthemes/internal/colormap"
	"plotthemes/internal/colors"
	"plotthemes/internal/style"
)

var (
	red  = colors.MustNew("red", 255, 0, 0)
	blue = colors.MustNew("navy_blue", 0, 0, 128)
)

func TestSwatchWidth(t *testing.T) {
	assert.Equal(t, 4, lipgloss.Width(Swatch(red, 4)))
	assert.Equal(t, 1, lipgloss.Width(Swatch(red, 0)))
}

func TestColorList(t *testing.T) {
	out := ColorList([]colors.Color{red, blue})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "red")
	assert.Contains(t, lines[0], "#FF0000")
	assert.Contains(t, lines[1], "#000080")
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]), "names are padded")
}

func TestBarDiscrete(t *testing.T) {
	cm, err := colormap.NewListed("pair", []colors.Color{red, blue})
	require.NoError(t, err)

	assert.Equal(t, 20, lipgloss.Width(Bar(cm, 20)))
	assert.Equal(t, 2, lipgloss.Width(Bar(cm, 1)), "at least one cell per entry")
}

func TestBarGradient(t *testing.T) {
	cm, err := colormap.Evenly("fade", red, blue)
	require.NoError(t, err)

	assert.Equal(t, 30, lipgloss.Width(Bar(cm, 30)))
}

func TestMapList(t *testing.T) {
	a, err := colormap.Evenly("t:c_short", red, blue)
	require.NoError(t, err)
	b, err := colormap.Evenly("t:c_much_longer", blue, red)
	require.NoError(t, err)

	out := MapList([]colormap.Colormap{a, b}, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  t:c_short "))
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[1]))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "1.00 x 2.00 in", FormatSize(style.CM2Inch(2.54, 5.08)))
}
