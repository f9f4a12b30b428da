package style

import "plotthemes/internal/colors"

var defaultCycle = []colors.Color{
	colors.MustNew("tab:blue", 0x1f, 0x77, 0xb4),
	colors.MustNew("tab:orange", 0xff, 0x7f, 0x0e),
	colors.MustNew("tab:green", 0x2c, 0xa0, 0x2c),
	colors.MustNew("tab:red", 0xd6, 0x27, 0x28),
	colors.MustNew("tab:purple", 0x94, 0x67, 0xbd),
	colors.MustNew("tab:brown", 0x8c, 0x56, 0x4b),
	colors.MustNew("tab:pink", 0xe3, 0x77, 0xc2),
	colors.MustNew("tab:gray", 0x7f, 0x7f, 0x7f),
	colors.MustNew("tab:olive", 0xbc, 0xbd, 0x22),
	colors.MustNew("tab:cyan", 0x17, 0xbe, 0xcf),
}

// Defaults returns a fresh copy of the runtime's factory parameters.
func Defaults() Params {
	return Params{
		KeyFontFamily:     DefaultFontFamily,
		KeyFontSansSerif:  "DejaVu Sans",
		KeyFontSize:       10.0,
		KeyPropCycle:      append([]colors.Color(nil), defaultCycle...),
		KeyImageCmap:      "viridis",
		KeyFigureSize:     FigureSize{Width: 6.4, Height: 4.8},
		KeyFigureDPI:      100,
		KeyTextColor:      colors.MustNew("black", 0, 0, 0),
		"axes.grid":       false,
		"axes.facecolor":  colors.MustNew("white", 255, 255, 255),
		"lines.linewidth": 1.5,
		"savefig.format":  "png",
	}
}
