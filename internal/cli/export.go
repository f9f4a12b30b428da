package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"plotthemes/internal/export"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export [theme-name]",
	Short: "Export a theme",
	Long: `Export a theme, defaulting to the configured one.

Supported formats:
  - json: colors and every derived color map (default)
  - yaml: a theme file that 'plotthemes import' and the themes directory accept
  - mplstyle: rc parameters as a matplotlib style sheet
  - csv: one row per color map entry
  - markdown: a readable summary

Examples:
  plotthemes export mpl-themes-blue --format mplstyle --output blue.mplstyle
  plotthemes export --format csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	formats := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		formats = append(formats, string(f))
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.FormatJSON),
		"export format ("+strings.Join(formats, ", ")+")")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	t, err := app.themeArg(args)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		return export.Write(cmd.OutOrStdout(), t, format)
	}

	file, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := export.Write(file, t, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to export theme: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}

	app.logger.Info().Str("theme", t.Name()).Str("format", string(format)).Str("path", exportOutput).Msg("theme exported")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported '%s' to %s\n", t.Name(), exportOutput)
	return nil
}
