package colors

// Colors shared by every theme, regardless of palette.
var (
	TrafficLightGreen  = MustNew("traffic_light_green", 41, 186, 116)
	TrafficLightOrange = MustNew("traffic_light_orange", 212, 223, 51)
	TrafficLightRed    = MustNew("traffic_light_red", 231, 28, 87)
)

// Common returns the shared colors in display order.
func Common() []Color {
	return []Color{TrafficLightGreen, TrafficLightOrange, TrafficLightRed}
}
