package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"plotthemes/internal/export"
)

var importConflictMode string

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Add a theme file to the custom themes directory",
	Long: `Validate a theme file and copy it into the themes directory, where it is
loaded on every run.

Conflict strategies:
  - fail: refuse when a theme with that name already exists (default)
  - skip: leave the existing theme untouched
  - overwrite: replace the existing theme file

Built-in themes can never be replaced.

Examples:
  plotthemes import ./ocean.yaml
  plotthemes import ./ocean.yaml --conflict-strategy overwrite`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importConflictMode, "conflict-strategy", string(export.ConflictStrategyFail), "fail, skip or overwrite")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	strategy, err := export.ParseConflictStrategy(importConflictMode)
	if err != nil {
		return err
	}

	importer := export.NewImporter(app.cfg.ThemesDir, app.manager)
	result, err := importer.ImportFile(args[0], strategy)
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Fprintf(cmd.OutOrStdout(), "Theme '%s' already exists, skipped\n", result.Theme)
		return nil
	}

	app.logger.Info().Str("theme", result.Theme).Str("path", result.Path).Msg("theme imported")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported '%s' to %s\n", result.Theme, result.Path)
	return nil
}
