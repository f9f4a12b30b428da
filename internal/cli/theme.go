package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"plotthemes/internal/display"
	"plotthemes/internal/style"
	"plotthemes/internal/theme"
	"plotthemes/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage plotting themes",
	Long: `Manage plotting themes.

Run without arguments to launch the interactive theme selector TUI.
Use subcommands for direct theme management.

Examples:
  plotthemes theme                        # Launch interactive TUI
  plotthemes theme set mpl-themes-blue    # Set theme directly
  plotthemes theme list                   # List available themes
  plotthemes theme show                   # Show current theme`,
	RunE: runThemeTUI,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set the default theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show [theme-name]",
	Short: "Show a theme's colors and color maps",
	Long:  `Display a theme's color palette and gradients. Defaults to the configured theme.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemeShow,
}

var themeApplyCmd = &cobra.Command{
	Use:   "apply [theme-name]",
	Short: "Apply a theme to a fresh runtime and print its style state",
	Long: `Apply a theme to an in-memory plotting runtime and print the resulting
default font, color cycle, registered color maps and parameters.

Examples:
  plotthemes theme apply mpl-themes-blue
  plotthemes theme apply --file ./ocean.yaml
  plotthemes theme apply --fonts "DejaVu Sans,Arial"   # Trebuchet MS falls back`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThemeApply,
}

var themeRCCmd = &cobra.Command{
	Use:   "rc [theme-name]",
	Short: "Print a theme's rc parameters in mplstyle format",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemeRC,
}

var themeValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a theme file builds",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeValidate,
}

var (
	applyFile  string
	applyFonts []string
)

func init() {
	themeApplyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "apply an unregistered theme from a YAML file")
	themeApplyCmd.Flags().StringSliceVar(&applyFonts, "fonts", nil, "fonts installed in the runtime (default: accept any)")

	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeApplyCmd)
	themeCmd.AddCommand(themeRCCmd)
	themeCmd.AddCommand(themeValidateCmd)
}

// launches theme selector
func runThemeTUI(cmd *cobra.Command, args []string) error {
	model := tui.NewSetupModel(app.manager, app.cfg.ThemeName, saveTheme)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run theme TUI: %w", err)
	}

	result, ok := final.(tui.SetupModel)
	if !ok || !result.Confirmed() {
		return nil
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", result.Selected())
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}

// sets the theme directly
func runThemeSet(cmd *cobra.Command, args []string) error {
	themeName := args[0]

	if !app.manager.ThemeExists(themeName) {
		return fmt.Errorf("theme '%s' not found%s. Run 'plotthemes theme list' to see available themes",
			themeName, didYouMean(themeName, app.manager.ListThemes()))
	}

	if err := saveTheme(themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", themeName)
	return nil
}

// lists all available themes
func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	current := app.currentTheme()
	styles := theme.NewStyles(current)

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(" Available Themes "))
	fmt.Fprintln(out)

	for _, name := range app.manager.ListThemes() {
		prefix := "  "
		if name == current.Name() {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, name)
	}

	fmt.Fprintln(out)
	return nil
}

// displays theme details
func runThemeShow(cmd *cobra.Command, args []string) error {
	t, err := app.themeArg(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := theme.NewStyles(t)

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" Theme: %s ", t.Name())))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %s\n\n", styles.Label.Render("Font:"), t.Font())

	sections := []struct {
		title  string
		groups []theme.Group
	}{
		{"Background", []theme.Group{theme.GroupBackground}},
		{"Text", []theme.Group{theme.GroupText}},
		{"Accents", []theme.Group{theme.GroupAccent}},
	}
	for _, sec := range sections {
		fmt.Fprintln(out, styles.Info.Render(sec.title+":"))
		fmt.Fprintln(out, display.ColorList(t.ThemeColors(sec.groups...)))
		fmt.Fprintln(out)
	}

	if custom := t.CustomColors(); len(custom) > 0 {
		fmt.Fprintln(out, styles.Info.Render("Custom:"))
		fmt.Fprintln(out, display.ColorList(custom))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, styles.Info.Render("Discrete maps:"))
	fmt.Fprintln(out, display.MapList(t.DiscreteMaps(), 30))
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Info.Render("Continuous maps:"))
	fmt.Fprintln(out, display.MapList(t.ContinuousMaps(), 30))
	fmt.Fprintln(out)
	return nil
}

// applies a theme to a fresh runtime and reports what changed
func runThemeApply(cmd *cobra.Command, args []string) error {
	var sel theme.Selector
	switch {
	case applyFile != "" && len(args) > 0:
		return fmt.Errorf("give either a theme name or --file, not both")
	case applyFile != "":
		t, err := theme.LoadFile(applyFile)
		if err != nil {
			return err
		}
		sel = theme.ByValue{Theme: t}
	case len(args) > 0:
		sel = theme.ByName(args[0])
	default:
		sel = theme.ByValue{Theme: app.currentTheme()}
	}

	var opts []style.RuntimeOption
	if len(applyFonts) > 0 {
		opts = append(opts, style.WithFonts(applyFonts...))
	}
	rt := style.NewRuntime(opts...)
	if err := app.manager.SetTheme(rt, sel); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Applied theme '%s'\n\n", sel)
	fmt.Fprintf(out, "  default font:  %s\n", rt.DefaultFont())
	fmt.Fprintf(out, "  image.cmap:    %s\n", style.FormatValue(rt.Param(style.KeyImageCmap)))
	fmt.Fprintf(out, "  color maps:    %d registered\n", len(rt.ColorMapNames()))
	fmt.Fprintf(out, "  styles:        %s\n\n", strings.Join(rt.StyleNames(), ", "))
	fmt.Fprintln(out, "Color cycle:")
	fmt.Fprintln(out, display.ColorList(rt.ColorCycle()))
	fmt.Fprintln(out)
	return nil
}

// prints rc params as an mplstyle file
func runThemeRC(cmd *cobra.Command, args []string) error {
	t, err := app.themeArg(args)
	if err != nil {
		return err
	}
	_, err = t.RC().WriteTo(cmd.OutOrStdout())
	return err
}

func runThemeValidate(cmd *cobra.Command, args []string) error {
	t, err := theme.LoadFile(args[0])
	if err != nil {
		return err
	}

	status := "new"
	if app.manager.ThemeExists(t.Name()) {
		status = "already registered"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: theme '%s' (%s), %d color maps\n",
		args[0], t.Name(), status, len(t.ColorMaps()))
	return nil
}
