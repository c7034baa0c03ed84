package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatter/shortcuts/internal/config"
	"github.com/chatter/shortcuts/internal/logger"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show where configuration files are looked for",
	Long: `Prints every configuration path in search order. The file in use is
marked with "*"; when none is usable the built-in catalog is shown.`,
	Args: cobra.NoArgs,
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	return writePaths(cmd.OutOrStdout(), configPath, wd)
}

func writePaths(w io.Writer, explicit, workDir string) error {
	inUse := config.Load(explicit, workDir, logger.Discard())

	for _, c := range config.Candidates(explicit, workDir) {
		marker := " "
		if inUse.Path != "" && c.Path == inUse.Path && c.Origin == inUse.Origin {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s (%s)\n", marker, c.Path, c.Origin); err != nil {
			return fmt.Errorf("writing paths: %w", err)
		}
	}

	if inUse.Path == "" {
		fmt.Fprintln(w, "* built-in catalog")
	}

	return nil
}
