package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plotthemes/internal/colormap"
	"plotthemes/internal/display"
	"plotthemes/internal/fuzzy"
	"plotthemes/internal/theme"
)

var cmapCmd = &cobra.Command{
	Use:   "cmap",
	Short: "Inspect the color maps derived from themes",
}

var cmapListCmd = &cobra.Command{
	Use:   "list [theme-name]",
	Short: "List a theme's color maps",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCmapList,
}

var cmapSampleCmd = &cobra.Command{
	Use:   "sample [cmap-name]",
	Short: "Print evenly spaced colors from a color map",
	Long: `Print n evenly spaced colors from a color map.

Examples:
  plotthemes cmap sample mpl-themes-blue:c_blue_yellow -n 7
  plotthemes cmap sample mpl-themes-green:d_highlight`,
	Args: cobra.ExactArgs(1),
	RunE: runCmapSample,
}

var cmapShadesCmd = &cobra.Command{
	Use:   "shades [theme-name] [slot]",
	Short: "Print tints and shades of one theme color",
	Long: `Print lighter and darker variants of a theme color slot.

Without -n the five PowerPoint cuts are used (0.8, 0.6, 0.4, -0.25, -0.5);
with -n the cuts are spread evenly between 0.8 and -0.5.

Examples:
  plotthemes cmap shades mpl-themes-blue accent1
  plotthemes cmap shades mpl-themes-green dark1 -n 9`,
	Args: cobra.ExactArgs(2),
	RunE: runCmapShades,
}

var (
	shadesCount  int
	cmapReversed bool
	cmapFilter   string
	sampleCount  int
)

func init() {
	cmapListCmd.Flags().BoolVarP(&cmapReversed, "reversed", "r", false, "include reversed gradients")
	cmapListCmd.Flags().StringVar(&cmapFilter, "filter", "", "fuzzy-match map names")
	cmapSampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 5, "number of colors")
	cmapShadesCmd.Flags().IntVarP(&shadesCount, "count", "n", 0, "number of evenly spaced cuts")

	rootCmd.AddCommand(cmapCmd)
	cmapCmd.AddCommand(cmapListCmd)
	cmapCmd.AddCommand(cmapSampleCmd)
	cmapCmd.AddCommand(cmapShadesCmd)
}

func runCmapList(cmd *cobra.Command, args []string) error {
	t, err := app.themeArg(args)
	if err != nil {
		return err
	}

	maps := append(t.DiscreteMaps(), t.ContinuousMaps()...)
	if cmapReversed {
		maps = append(maps, t.ReversedMaps()...)
	}
	if cmapFilter != "" {
		names := make([]string, len(maps))
		for i, cm := range maps {
			names[i] = cm.Name()
		}
		var filtered []colormap.Colormap
		for _, r := range fuzzy.Rank(cmapFilter, names, 50) {
			filtered = append(filtered, maps[r.Index])
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no color map of '%s' matches %q", t.Name(), cmapFilter)
		}
		maps = filtered
	}
	fmt.Fprintln(cmd.OutOrStdout(), display.MapList(maps, 30))
	return nil
}

// finds a map by its scoped "<theme>:<map>" name
func lookupColormap(m *theme.Manager, name string) (colormap.Colormap, error) {
	themeName, _, ok := strings.Cut(name, ":")
	if !ok {
		return nil, fmt.Errorf("color map %q is not of the form <theme>:<map>", name)
	}
	t, err := m.GetTheme(themeName)
	if err != nil {
		return nil, err
	}
	cm, ok := t.ColorMap(name)
	if !ok {
		return nil, fmt.Errorf("theme '%s' has no color map %q%s", themeName, name, didYouMean(name, mapNames(t)))
	}
	return cm, nil
}

func mapNames(t *theme.Theme) []string {
	maps := t.ColorMaps()
	names := make([]string, len(maps))
	for i, cm := range maps {
		names[i] = cm.Name()
	}
	return names
}

// suggestion suffix for not-found errors
func didYouMean(name string, candidates []string) string {
	hits := fuzzy.Suggest(name, candidates, 3)
	if len(hits) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(hits, ", "))
}

func runCmapSample(cmd *cobra.Command, args []string) error {
	if sampleCount < 1 {
		return fmt.Errorf("count must be positive, got %d", sampleCount)
	}
	cm, err := lookupColormap(app.manager, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, display.Bar(cm, 40))
	for _, c := range colormap.Sample(cm, sampleCount) {
		fmt.Fprintf(out, "%s %s\n", display.Swatch(c, 4), c.Hex())
	}
	return nil
}

func runCmapShades(cmd *cobra.Command, args []string) error {
	if shadesCount < 0 {
		return fmt.Errorf("count must be positive, got %d", shadesCount)
	}
	t, err := app.manager.GetTheme(args[0])
	if err != nil {
		return err
	}
	base, ok := t.SlotColor(args[1])
	if !ok {
		return fmt.Errorf("theme '%s' has no color slot %q", t.Name(), args[1])
	}

	cuts := colormap.DefaultCuts
	if shadesCount > 0 {
		cuts = colormap.EvenCuts(shadesCount)
	}
	cm, err := colormap.Shades(t.Name()+":"+args[1], base, cuts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s %s\n", display.Swatch(base, 4), base.Hex(), args[1])
	labels := shadeOrder(cuts)
	for i, c := range cm.Colors() {
		fmt.Fprintf(out, "%s %s %+.2f\n", display.Swatch(c, 4), c.Hex(), labels[i])
	}
	return nil
}

// cuts in the order Shades emits them: tints first, then shades
func shadeOrder(cuts []float64) []float64 {
	ordered := make([]float64, 0, len(cuts))
	for _, c := range cuts {
		if c >= 0 {
			ordered = append(ordered, c)
		}
	}
	for _, c := range cuts {
		if c < 0 {
			ordered = append(ordered, c)
		}
	}
	return ordered
}
