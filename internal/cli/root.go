package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"plotthemes/internal/config"
	"plotthemes/internal/logging"
	"plotthemes/internal/theme"
)

// swapped out in tests
var (
	loadConfig = config.LoadConfig
	saveTheme  = config.UpdateTheme
)

var logLevel string

// state shared by every command, built once per invocation
type appState struct {
	cfg     *config.Config
	logger  zerolog.Logger
	manager *theme.Manager
}

var app *appState

var rootCmd = &cobra.Command{
	Use:   "plotthemes",
	Short: "plotthemes - plotting themes for matplotlib-style runtimes",
	Long: `plotthemes defines plotting themes (a font plus a fixed set of semantic
colors), derives discrete and continuous color maps from them, and applies
them to a plotting runtime's global style state.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadState(cmd)
		if err != nil {
			return err
		}
		app = s
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadState(cmd *cobra.Command) (*appState, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	logger, err := logging.NewConsole(level)
	if err != nil {
		return nil, err
	}

	manager := theme.NewManager(logger)
	// bad custom themes are logged and skipped inside LoadInto
	_, _ = manager.LoadInto(cfg.ThemesDir)

	return &appState{cfg: cfg, logger: logger, manager: manager}, nil
}

// configured theme, or the default when unset or unknown
func (s *appState) currentTheme() *theme.Theme {
	if s.cfg.ThemeName == "" {
		return s.manager.GetDefaultTheme()
	}
	t, err := s.manager.GetTheme(s.cfg.ThemeName)
	if err != nil {
		s.logger.Warn().Err(err).Msg("configured theme unavailable, using default")
		return s.manager.GetDefaultTheme()
	}
	return t
}

// theme named by args[0], falling back to the configured one
func (s *appState) themeArg(args []string) (*theme.Theme, error) {
	if len(args) == 0 {
		return s.currentTheme(), nil
	}
	return s.manager.GetTheme(args[0])
}

func displayWelcome(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	styles := theme.NewStyles(app.currentTheme())

	title := styles.Title.Render(`
		------------------------------------------------------

		              P L O T   T H E M E S

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("Consistent colors for every chart")

	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, subtitle)
	fmt.Fprintln(out)
	if app.cfg.ThemeName == "" {
		fmt.Fprintln(out, "No theme configured yet. Run 'plotthemes theme' to pick one.")
	}
	fmt.Fprintln(out, "Run 'plotthemes --help' to see available commands.")
	fmt.Fprintln(out)
}
