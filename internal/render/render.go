// Package render lays out the cheat sheet as plain text lines. It performs no
// I/O and never styles its output; hosts decide how to colour and place the
// lines they receive.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/chatter/shortcuts/internal/catalog"
	"github.com/chatter/shortcuts/internal/session"
)

const (
	// Header is the first line of every frame.
	Header = "━━━ Shortcuts ━━━"

	// SearchHint is shown on the search line while browsing.
	SearchHint = "Press / to search"

	// SearchPrompt prefixes the query while searching; SearchCursor follows it.
	SearchPrompt = "/ "
	SearchCursor = "_"

	// ActiveMarker and InactiveMarker lead each tab in the tab bar.
	ActiveMarker   = "▸"
	InactiveMarker = " "

	// GroupRule wraps group names in their title line.
	GroupRule = "───"

	// Legend is the last line of every frame.
	Legend = "Tab: Next | Shift+Tab: Prev | 1-9: Jump | /: Search | ESC/q: Quit"

	// KeyColumnWidth is the display width the keys column is padded to.
	KeyColumnWidth = 20

	// footerLines is the rule plus the legend.
	footerLines = 2
)

// FooterRule separates the content from the legend.
var FooterRule = strings.Repeat("━", 50)

// Viewport is the size of the pane the frame is drawn into.
// Cols is accepted for future wrapping; lines are not truncated to it.
type Viewport struct {
	Rows int
	Cols int
}

// Render produces one frame for the given catalog and state.
func Render(cat catalog.Catalog, st session.State, vp Viewport) []string {
	lines := []string{Header, ""}

	lines = append(lines, TabBar(cat, st.ActiveTab), "")
	lines = append(lines, SearchLine(st), "")

	if category, ok := cat.Category(st.ActiveTab); ok {
		query := ""
		if st.Searching {
			query = st.Query
		}
		for _, group := range category.Groups {
			lines = append(lines, GroupTitle(group.Name))
			for _, sc := range group.Shortcuts {
				if Matches(sc, query) {
					lines = append(lines, ShortcutLine(sc))
				}
			}
			lines = append(lines, "")
		}
	}

	// Pin the footer to the bottom; never pad negatively.
	for range max(vp.Rows-len(lines)-footerLines, 0) {
		lines = append(lines, "")
	}

	return append(lines, FooterRule, Legend)
}

// TabBar renders every category with Tab, concatenated.
func TabBar(cat catalog.Catalog, active int) string {
	var b strings.Builder
	for i, c := range cat.Categories {
		b.WriteString(Tab(i, c, i == active))
	}
	return b.String()
}

// Tab renders the category at index i as "<marker> <n>:<icon> <name> ".
func Tab(i int, c catalog.Category, active bool) string {
	marker := InactiveMarker
	if active {
		marker = ActiveMarker
	}
	return fmt.Sprintf("%s %d:%s %s ", marker, i+1, c.Icon, c.Name)
}

// SearchLine renders the prompt and query while searching, the hint otherwise.
func SearchLine(st session.State) string {
	if st.Searching {
		return SearchPrompt + st.Query + SearchCursor
	}
	return SearchHint
}

// GroupTitle renders the titled separator for a group.
func GroupTitle(name string) string {
	return GroupRule + " " + name + " " + GroupRule
}

// ShortcutLine renders keys padded to KeyColumnWidth followed by the description.
func ShortcutLine(sc catalog.Shortcut) string {
	return "  " + runewidth.FillRight(sc.Keys, KeyColumnWidth) + " " + sc.Description
}

// Matches reports whether sc passes the search filter. An empty query matches
// everything; otherwise the case-folded query must be a substring of the
// case-folded keys or description.
func Matches(sc catalog.Shortcut, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(sc.Keys), q) ||
		strings.Contains(strings.ToLower(sc.Description), q)
}
