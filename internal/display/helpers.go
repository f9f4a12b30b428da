// Package display renders colors and color maps as terminal swatches.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plotthemes/internal/colormap"
	"plotthemes/internal/colors"
	"plotthemes/internal/style"
)

const block = "█"

// Swatch is a solid block of c, width cells wide.
func Swatch(c colors.Color, width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(block, width))
}

// ColorLine shows one named color: name, swatch, hex.
func ColorLine(c colors.Color, nameWidth int) string {
	return fmt.Sprintf("  %-*s %s %s", nameWidth, c.Name(), Swatch(c, 6), c.Hex())
}

// ColorList renders colors one per line, names aligned.
func ColorList(cs []colors.Color) string {
	width := 0
	for _, c := range cs {
		width = max(width, len(c.Name()))
	}
	lines := make([]string, len(cs))
	for i, c := range cs {
		lines[i] = ColorLine(c, width)
	}
	return strings.Join(lines, "\n")
}

// Bar draws a color map across width cells. Discrete maps get equal-width
// cells per entry; gradients are sampled once per cell.
func Bar(cm colormap.Colormap, width int) string {
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	if listed, ok := cm.(*colormap.Listed); ok {
		cs := listed.Colors()
		cell := max(1, width/len(cs))
		for _, c := range cs {
			b.WriteString(Swatch(c, cell))
		}
		return b.String()
	}

	for _, c := range colormap.Sample(cm, width) {
		b.WriteString(Swatch(c, 1))
	}
	return b.String()
}

// MapLine labels a color map bar with its name.
func MapLine(cm colormap.Colormap, nameWidth, barWidth int) string {
	return fmt.Sprintf("  %-*s %s", nameWidth, cm.Name(), Bar(cm, barWidth))
}

// MapList renders maps one per line, names aligned.
func MapList(maps []colormap.Colormap, barWidth int) string {
	width := 0
	for _, cm := range maps {
		width = max(width, len(cm.Name()))
	}
	lines := make([]string, len(maps))
	for i, cm := range maps {
		lines[i] = MapLine(cm, width, barWidth)
	}
	return strings.Join(lines, "\n")
}

func FormatSize(s style.FigureSize) string {
	return fmt.Sprintf("%.2f x %.2f in", s.Width, s.Height)
}
