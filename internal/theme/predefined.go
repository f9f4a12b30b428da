package theme

import "plotthemes/internal/colors"

const (
	BlueThemeName  = "mpl-themes-blue"
	GreenThemeName = "mpl-themes-green"

	DefaultThemeName = GreenThemeName
)

func GetPredefinedThemes() map[string]*Theme {
	return map[string]*Theme{
		BlueThemeName:  BlueGenericTheme(),
		GreenThemeName: GreenGenericTheme(),
	}
}

func GetThemeNames() []string {
	return []string{
		BlueThemeName,
		GreenThemeName,
	}
}

func BlueGenericTheme() *Theme {
	red := colors.MustNew("magenta", 231, 28, 87)
	green := colors.MustNew("green", 0, 191, 111)
	blue := colors.MustNew("blue", 44, 77, 142)
	yellow := colors.MustNew("gold", 250, 188, 21)

	return mustBuild(Spec{
		Name: BlueThemeName,
		Font: "Trebuchet MS",

		// background
		Background1: colors.MustNew("white", 255, 255, 255),
		Background2: colors.MustNew("off_white", 242, 242, 242),

		// text
		Text1: colors.MustNew("gray", 134, 134, 134),
		Text2: blue,

		// accent
		Accent1: colors.MustNew("turquoise", 0, 172, 236),
		Accent2: colors.MustNew("lime", 206, 220, 0),
		Accent3: yellow,
		Accent4: colors.MustNew("tan", 197, 183, 134),
		Accent5: colors.MustNew("teal", 0, 163, 173),
		Accent6: green,

		DefaultRed:    red,
		DefaultGreen:  green,
		DefaultBlue:   blue,
		DefaultYellow: yellow,

		CustomColors: []colors.Color{red},
	})
}

func GreenGenericTheme() *Theme {
	red := colors.MustNew("magenta", 231, 28, 87)
	green := colors.MustNew("bright_green", 41, 186, 116)
	blue := colors.MustNew("true_blue", 41, 94, 126)
	yellow := colors.MustNew("yellow", 212, 223, 51)

	return mustBuild(Spec{
		Name: GreenThemeName,
		Font: "Trebuchet MS",

		// background
		Background1: colors.MustNew("white", 255, 255, 255),
		Background2: colors.MustNew("off_white", 242, 242, 242),

		// text
		Text1: colors.MustNew("dark_gray", 87, 87, 87),
		Text2: green,

		// accent
		Accent1: colors.MustNew("forest_green", 3, 82, 45),
		Accent2: colors.MustNew("jade_green", 25, 122, 86),
		Accent3: yellow,
		Accent4: colors.MustNew("mint_green", 62, 173, 146),
		Accent5: colors.MustNew("medium_gray", 110, 111, 115),
		Accent6: blue,

		DefaultRed:    red,
		DefaultGreen:  green,
		DefaultBlue:   blue,
		DefaultYellow: yellow,

		CustomColors: []colors.Color{
			colors.MustNew("cranberry", 103, 15, 49),
			colors.MustNew("dark_yellow", 168, 178, 28),
			colors.MustNew("bright_blue", 48, 193, 215),
		},
	})
}

func mustBuild(s Spec) *Theme {
	t, err := New(s)
	if err != nil {
		panic(err)
	}
	return t
}
