package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/chatter/shortcuts/internal/catalog"
	"github.com/chatter/shortcuts/internal/logger"
	"github.com/chatter/shortcuts/internal/render"
	"github.com/chatter/shortcuts/internal/ui"
)

var errUnknownCategory = errors.New("unknown category")

var (
	listQuery    string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print shortcuts without starting the interface",
	Long: `Prints every shortcut of the catalog grouped by category and group.

--category limits output to one category (case-insensitive) and --query keeps
only shortcuts whose keys or description contain the text. Colours are dropped
when the output is not a terminal.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Only show shortcuts matching this text")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Only show this category")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	log, err := logger.New(logLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Close()

	res, err := loadCatalog(log)
	if err != nil {
		return err
	}

	out := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())

	return writeList(out, res.Catalog, listCategory, listQuery)
}

// writeList prints the matching shortcuts of cat. Categories and groups with
// no matching shortcut are left out.
func writeList(w io.Writer, cat catalog.Catalog, category, query string) error {
	if category != "" && !hasCategory(cat, category) {
		return fmt.Errorf("%w: %q", errUnknownCategory, category)
	}

	styles := ui.NewStyles(cat.Theme)

	var (
		lastCategory, lastGroup string
		started                 bool
	)
	for _, e := range cat.Entries() {
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}

		sc := catalog.Shortcut{Keys: e.Keys, Description: e.Description}
		if !render.Matches(sc, query) {
			continue
		}

		var lines []string
		newCategory := !started || e.Category != lastCategory
		if newCategory {
			if started {
				lines = append(lines, "")
			}
			lines = append(lines, styles.Header.Render(e.Category))
			lastCategory, started = e.Category, true
		}
		if newCategory || e.Group != lastGroup {
			lines = append(lines, styles.GroupTitle.Render(render.GroupTitle(e.Group)))
			lastGroup = e.Group
		}
		lines = append(lines, ui.ShortcutLine(sc, styles))

		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("writing list: %w", err)
			}
		}
	}

	return nil
}

func hasCategory(cat catalog.Catalog, name string) bool {
	for _, c := range cat.Categories {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
