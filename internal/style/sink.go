package style

import (
	"plotthemes/internal/colormap"
	"plotthemes/internal/colors"
)

// Sink receives the style state a theme writes. Implementations own the
// state; callers never read it back as a source of truth.
type Sink interface {
	SetDefaultFont(family string)
	SetColorCycle(cycle []colors.Color)
	RegisterColorMap(cm colormap.Colormap)
	RegisterColor(c colors.Color)
	ResetParams()
	UpdateParams(p Params)
	RegisterStyle(name string, p Params)
	HasFont(family string) bool
}
