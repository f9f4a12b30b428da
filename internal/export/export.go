// Package export writes themes out in the formats other tools read, and
// imports theme files into the custom themes directory.
package export

import (
	"fmt"
	"io"

	"plotthemes/internal/theme"
)

// Write renders t to w in the given format.
func Write(w io.Writer, t *theme.Theme, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatYAML:
		return WriteYAML(w, t)
	case FormatMPLStyle:
		return WriteMPLStyle(w, t)
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatMarkdown:
		return WriteMarkdown(w, t)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// WriteMPLStyle writes the theme's rc parameters as a style sheet.
func WriteMPLStyle(w io.Writer, t *theme.Theme) error {
	if _, err := fmt.Fprintf(w, "# %s\n", t.Name()); err != nil {
		return err
	}
	_, err := t.RC().WriteTo(w)
	return err
}
