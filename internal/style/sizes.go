package style

const cmPerInch = 2.54

// FigureSize is a width/height pair in inches.
type FigureSize struct {
	Width  float64
	Height float64
}

// CM2Inch converts a size given in centimetres.
func CM2Inch(width, height float64) FigureSize {
	return FigureSize{Width: width / cmPerInch, Height: height / cmPerInch}
}

// Slide-layout figure sizes, in display order.
var (
	SizeNames = []string{"large", "medium", "small", "half", "two_third", "one_third", "one_third_spaced"}

	Sizes = map[string]FigureSize{
		"large":            CM2Inch(26.76, 10.01),
		"medium":           CM2Inch(21.85, 10.01),
		"small":            CM2Inch(17, 9.91),
		"half":             CM2Inch(12.85, 9.91),
		"two_third":        CM2Inch(17.00, 10.01),
		"one_third":        CM2Inch(9.69, 9.91),
		"one_third_spaced": CM2Inch(8.76, 9.91),
	}
)
