package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/chatter/shortcuts/internal/catalog"
	"github.com/chatter/shortcuts/internal/render"
	"github.com/chatter/shortcuts/internal/session"
)

// Line positions fixed by the frame layout.
const (
	tabBarLine = 2
	searchLine = 4
)

// Frame renders cat in state st and styles every line. The plain text is
// exactly render.Render's output; only ANSI styling is added.
func Frame(cat catalog.Catalog, st session.State, vp render.Viewport, s Styles) string {
	lines := render.Render(cat, st, vp)

	shortcuts := visibleShortcuts(cat, st)
	last := len(lines) - 1

	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case line == "":
			out[i] = line
		case i == 0:
			out[i] = s.Header.Render(line)
		case i == tabBarLine:
			out[i] = styleTabBar(cat, st.ActiveTab, s)
		case i == searchLine:
			if st.Searching {
				out[i] = s.SearchQuery.Render(line)
			} else {
				out[i] = s.SearchHint.Render(line)
			}
		case i == last:
			out[i] = s.Legend.Render(line)
		case i == last-1:
			out[i] = s.FooterRule.Render(line)
		case strings.HasPrefix(line, render.GroupRule):
			out[i] = s.GroupTitle.Render(line)
		default:
			if sc, ok := shortcuts[line]; ok {
				out[i] = ShortcutLine(sc, s)
			} else {
				out[i] = line
			}
		}
	}

	return strings.Join(out, "\n")
}

func styleTabBar(cat catalog.Catalog, active int, s Styles) string {
	var b strings.Builder
	for i, c := range cat.Categories {
		b.WriteString(s.Tab(c, i == active).Render(render.Tab(i, c, i == active)))
	}
	return b.String()
}

// ShortcutLine is render.ShortcutLine with the key column and description
// styled separately.
func ShortcutLine(sc catalog.Shortcut, s Styles) string {
	keys := runewidth.FillRight(sc.Keys, render.KeyColumnWidth)
	return "  " + s.Keys.Render(keys) + " " + s.Description.Render(sc.Description)
}

// visibleShortcuts maps each rendered shortcut line back to its shortcut.
func visibleShortcuts(cat catalog.Catalog, st session.State) map[string]catalog.Shortcut {
	out := make(map[string]catalog.Shortcut)

	c, ok := cat.Category(st.ActiveTab)
	if !ok {
		return out
	}

	query := ""
	if st.Searching {
		query = st.Query
	}
	for _, g := range c.Groups {
		for _, sc := range g.Shortcuts {
			if render.Matches(sc, query) {
				out[render.ShortcutLine(sc)] = sc
			}
		}
	}
	return out
}
