// Package cmd implements the shortcuts command line.
package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/chatter/shortcuts/internal/app"
	"github.com/chatter/shortcuts/internal/config"
	"github.com/chatter/shortcuts/internal/logger"
)

var (
	configPath  string
	logLevel    string
	watchConfig bool
	version     = "dev"
)

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "Keyboard shortcut cheat sheet for the terminal",
	Long: `shortcuts shows a tabbed cheat sheet of keyboard shortcuts, one tab per tool.

Tab and Shift+Tab switch categories, 1-9 jump to one, / filters the current
category and Esc or q closes the sheet. The catalog is read from the first
configuration file found (see "shortcuts paths"), or the built-in one.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a shortcuts file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", os.Getenv(config.EnvLogLevel), "Log level: debug, info, warn or error (empty disables logging)")
	rootCmd.Flags().BoolVar(&watchConfig, "watch", true, "Reload the catalog when the configuration file changes")
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func runTUI(cmd *cobra.Command, args []string) error {
	log, err := logger.New(logLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Close()

	res, err := loadCatalog(log)
	if err != nil {
		return err
	}

	m := app.New(app.Options{
		Catalog:    res.Catalog,
		ConfigPath: res.WatchPath,
		Watch:      watchConfig,
		Logger:     log,
	})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	log.Info("shortcuts exited")

	return nil
}

// loadCatalog resolves the configuration relative to the working directory.
func loadCatalog(log *logger.Logger) (config.Result, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Result{}, fmt.Errorf("getting working directory: %w", err)
	}

	return config.Load(configPath, wd, log), nil
}
