package theme

import (
	"plotthemes/internal/colors"
	"plotthemes/internal/style"
)

// SetTheme resolves sel and applies it to sink. The effect lasts until the
// next SetTheme; there is no rollback.
func (m *Manager) SetTheme(sink style.Sink, sel Selector) error {
	t, err := m.Resolve(sel)
	if err != nil {
		return err
	}
	m.logger.Info().Str("theme", t.Name()).Msg("setting default plotting theme")
	m.apply(sink, t)
	return nil
}

// RegisterStyle only adds the theme's parameters to the sink's style library,
// without making it the default.
func (m *Manager) RegisterStyle(sink style.Sink, sel Selector) error {
	t, err := m.Resolve(sel)
	if err != nil {
		return err
	}
	m.logger.Info().Str("theme", t.Name()).Msg("registering theme in style library")
	sink.RegisterStyle(t.Name(), t.RC())
	return nil
}

func (m *Manager) apply(sink style.Sink, t *Theme) {
	log := m.logger.With().Str("theme", t.Name()).Logger()

	// start from defaults so nothing from a previous theme survives
	sink.ResetParams()

	rc := t.RC()
	font := t.Font()
	log.Debug().Str("font", font).Msg("registering font")
	if !sink.HasFont(font) {
		log.Warn().Str("font", font).Str("fallback", style.DefaultFontFamily).Msg("font not available, using default")
		font = style.DefaultFontFamily
		rc[style.KeyFontFamily] = font
		rc[style.KeyFontSansSerif] = font
	}
	sink.SetDefaultFont(font)

	log.Debug().Msg("registering colors")
	for _, cs := range [][]colors.Color{t.ThemeColors(), t.CustomColors(), t.CommonColors()} {
		for _, c := range cs {
			sink.RegisterColor(c)
		}
	}

	maps := t.ColorMaps()
	log.Debug().Int("count", len(maps)).Msg("registering color maps")
	for _, cm := range maps {
		sink.RegisterColorMap(cm)
	}

	log.Debug().Int("params", len(rc)).Msg("registering rc params")
	sink.UpdateParams(rc)
	sink.SetColorCycle(t.Palette())
	sink.RegisterStyle(t.Name(), rc)
}
