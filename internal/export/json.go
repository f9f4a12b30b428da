package export

import (
	"encoding/json"
	"io"

	"plotthemes/internal/colormap"
	"plotthemes/internal/colors"
	"plotthemes/internal/theme"
)

// Convert builds the export record for t.
func Convert(t *theme.Theme) *ThemeExport {
	out := &ThemeExport{
		Version: Version,
		Name:    t.Name(),
		Font:    t.Font(),
		Colors:  make(map[string]ColorData),
	}

	for _, slot := range theme.SlotNames() {
		if c, ok := t.SlotColor(slot); ok {
			out.Colors[slot] = convertColor(c)
		}
	}
	for _, c := range t.CustomColors() {
		out.CustomColors = append(out.CustomColors, convertColor(c))
	}
	for _, c := range t.CommonColors() {
		out.CommonColors = append(out.CommonColors, convertColor(c))
	}

	for _, cm := range t.DiscreteMaps() {
		out.ColorMaps = append(out.ColorMaps, convertMap(cm, KindDiscrete))
	}
	for _, cm := range t.ContinuousMaps() {
		out.ColorMaps = append(out.ColorMaps, convertMap(cm, KindContinuous))
	}
	for _, cm := range t.ReversedMaps() {
		out.ColorMaps = append(out.ColorMaps, convertMap(cm, KindReversed))
	}
	return out
}

func convertColor(c colors.Color) ColorData {
	r, g, b := c.RGB()
	return ColorData{
		Name:  c.Name(),
		Hex:   c.Hex(),
		RGB:   [3]int{int(r), int(g), int(b)},
		Alpha: c.Alpha(),
	}
}

func convertMap(cm colormap.Colormap, kind string) ColorMapData {
	data := ColorMapData{Name: cm.Name(), Kind: kind}

	switch m := cm.(type) {
	case *colormap.Listed:
		for _, c := range m.Colors() {
			data.Colors = append(data.Colors, c.Hex())
		}
	case *colormap.Linear:
		for _, s := range m.Stops() {
			data.Colors = append(data.Colors, s.Color.Hex())
			data.Positions = append(data.Positions, s.Pos)
		}
	default:
		for _, c := range colormap.Sample(cm, cm.Len()) {
			data.Colors = append(data.Colors, c.Hex())
		}
	}
	return data
}

func WriteJSON(w io.Writer, t *theme.Theme) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(Convert(t))
}
