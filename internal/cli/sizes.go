package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"plotthemes/internal/display"
	"plotthemes/internal/style"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List the named figure sizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range style.SizeNames {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-18s %s\n", name, display.FormatSize(style.Sizes[name]))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
}
