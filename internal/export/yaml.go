package export

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"plotthemes/internal/theme"
)

// WriteYAML writes t as a theme file that theme.LoadFile reads back.
func WriteYAML(w io.Writer, t *theme.Theme) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(t.File()); err != nil {
		return fmt.Errorf("failed to encode theme %s: %w", t.Name(), err)
	}
	return encoder.Close()
}
