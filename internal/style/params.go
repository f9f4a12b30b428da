// Package style models the global style state of a plotting runtime: rc
// parameters, the colormap registry, named colors and the style library.
package style

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"plotthemes/internal/colors"
)

// Well-known parameter keys.
const (
	KeyFontFamily    = "font.family"
	KeyFontSansSerif = "font.sans-serif"
	KeyFontSize      = "font.size"
	KeyPropCycle     = "axes.prop_cycle"
	KeyImageCmap     = "image.cmap"
	KeyFigureSize    = "figure.figsize"
	KeyFigureDPI     = "figure.dpi"
	KeyTextColor     = "text.color"
)

// DefaultFontFamily is used when a requested font is unavailable.
const DefaultFontFamily = "sans-serif"

// Params is an rc-style parameter set. Values are strings, bools, ints,
// float64s, colors.Color, []colors.Color or FigureSize.
type Params map[string]any

func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if cs, ok := v.([]colors.Color); ok {
			v = append([]colors.Color(nil), cs...)
		}
		out[k] = v
	}
	return out
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteTo writes p in mplstyle form, one "key: value" line per parameter.
func (p Params) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, k := range p.Keys() {
		n, err := fmt.Fprintf(w, "%s: %s\n", k, FormatValue(p[k]))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// FormatValue renders a single parameter value the way a style sheet spells it.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case colors.Color:
		return formatColor(val)
	case []colors.Color:
		parts := make([]string, len(val))
		for i, c := range val {
			parts[i] = "'" + formatColor(c) + "'"
		}
		return "cycler('color', [" + strings.Join(parts, ", ") + "])"
	case FigureSize:
		return strconv.FormatFloat(val.Width, 'g', 6, 64) + ", " + strconv.FormatFloat(val.Height, 'g', 6, 64)
	default:
		return fmt.Sprint(val)
	}
}

func formatColor(c colors.Color) string {
	hex := strings.TrimPrefix(c.Hex(), "#")
	if c.Alpha() < 1 {
		hex += fmt.Sprintf("%02X", int(c.Alpha()*255+0.5))
	}
	return hex
}
