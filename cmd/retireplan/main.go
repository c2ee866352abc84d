// cmd/retireplan/main.go
//
// This is the entry point for the retireplan CLI.
// When you run `retireplan` from any directory, this is what executes.
//
// Flow:
// 1. Make sure .retireplan/ exists in the project directory
// 2. Load config.yaml and open the session log
// 3. Launch the TUI, and optionally print the finished profile on exit

package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kingrea/retireplan/internal/config"
	"github.com/kingrea/retireplan/internal/logbook"
	"github.com/kingrea/retireplan/internal/logging"
	"github.com/kingrea/retireplan/internal/onboarding"
	"github.com/kingrea/retireplan/internal/tui"
)

var (
	projectDir   string
	logLevel     string
	printProfile bool
)

// rootCmd runs the onboarding TUI.
var rootCmd = &cobra.Command{
	Use:   "retireplan",
	Short: "Retirement planning onboarding in the terminal",
	Long: `retireplan walks you through four short steps (about you, your super,
your risk tolerance and your goals) and shows a projected retirement balance
as you type.

Run without arguments to start the interactive wizard.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "d", "", "Project directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging.level from config.yaml")
	rootCmd.Flags().BoolVar(&printProfile, "print-profile", false, "Print the completed profile as YAML after exit")

	rootCmd.AddCommand(newEstimateCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	if err := config.InitDir(dir); err != nil {
		return fmt.Errorf("initializing .retireplan directory: %w", err)
	}
	cfg, err := config.NewConfig(dir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level := cfg.LogLevel()
	if logLevel != "" {
		if !config.ValidLogLevel(logLevel) {
			return fmt.Errorf("--log-level must be debug, info, warn or error")
		}
		level = logLevel
	}
	logger, err := logging.New(cfg.LogsDir(), level)
	if err != nil {
		return err
	}
	defer logger.Close()

	app := tui.NewApp(cfg, logbook.New(logger))
	p := tea.NewProgram(app, tea.WithAltScreen())

	// Run blocks until the user quits
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	if !printProfile {
		return nil
	}
	profile, ok := app.Profile()
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "Onboarding was not completed; no profile to print.")
		return nil
	}
	return writeProfile(cmd.OutOrStdout(), profile)
}

func resolveDir() (string, error) {
	if projectDir != "" {
		return projectDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return cwd, nil
}

// writeProfile emits the profile as YAML. Nothing reads this back.
func writeProfile(w io.Writer, profile onboarding.UserProfile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(profile); err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return enc.Close()
}
