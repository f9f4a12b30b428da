package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"plotthemes/internal/theme"
)

// WriteCSV writes one row per color map entry.
func WriteCSV(w io.Writer, t *theme.Theme) error {
	writer := csv.NewWriter(w)

	header := []string{"Color Map", "Kind", "Index", "Position", "Hex"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, cm := range Convert(t).ColorMaps {
		for i, hex := range cm.Colors {
			pos := ""
			if i < len(cm.Positions) {
				pos = strconv.FormatFloat(cm.Positions[i], 'f', -1, 64)
			}
			row := []string{cm.Name, cm.Kind, strconv.Itoa(i), pos, hex}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
