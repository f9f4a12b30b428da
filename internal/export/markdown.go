package export

import (
	"fmt"
	"io"
	"strings"

	"plotthemes/internal/theme"
)

// WriteMarkdown writes a human-readable summary of t.
func WriteMarkdown(w io.Writer, t *theme.Theme) error {
	data := Convert(t)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", data.Name)
	fmt.Fprintf(&b, "Font: %s\n\n", data.Font)

	b.WriteString("## Colors\n\n")
	b.WriteString("| Slot | Name | Hex |\n")
	b.WriteString("|------|------|-----|\n")
	for _, slot := range theme.SlotNames() {
		c := data.Colors[slot]
		fmt.Fprintf(&b, "| %s | %s | `%s` |\n", slot, c.Name, c.Hex)
	}
	b.WriteString("\n")

	if len(data.CustomColors) > 0 {
		b.WriteString("## Custom colors\n\n")
		for _, c := range data.CustomColors {
			fmt.Fprintf(&b, "- %s `%s`\n", c.Name, c.Hex)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Color maps\n\n")
	for _, cm := range data.ColorMaps {
		if cm.Kind == KindReversed {
			continue
		}
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", cm.Name, cm.Kind, "`"+strings.Join(cm.Colors, "` `")+"`")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
