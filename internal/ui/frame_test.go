package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"pgregory.net/rapid"

	"github.com/chatter/shortcuts/internal/catalog"
	"github.com/chatter/shortcuts/internal/catalog/testgen"
	"github.com/chatter/shortcuts/internal/render"
	"github.com/chatter/shortcuts/internal/session"
)

func sample() catalog.Catalog {
	return catalog.Catalog{Categories: []catalog.Category{
		{
			Name:  "Git",
			Color: "#f05032",
			Groups: []catalog.Group{{Name: "Basics", Shortcuts: []catalog.Shortcut{
				{Keys: "git status", Description: "Check repository status"},
			}}},
		},
		{
			Name: "Zellij",
			Groups: []catalog.Group{{Name: "Panes", Shortcuts: []catalog.Shortcut{
				{Keys: "Ctrl+p n", Description: "New pane"},
				{Keys: "Ctrl+p x", Description: "Close pane"},
			}}},
		},
	}}
}

func TestFrame_PlainTextMatchesRender(t *testing.T) {
	cat := sample()
	tests := []struct {
		name string
		st   session.State
		vp   render.Viewport
	}{
		{"browsing", session.New(), render.Viewport{Rows: 24, Cols: 80}},
		{"second tab", session.State{ActiveTab: 1}, render.Viewport{Rows: 10}},
		{"searching", session.State{ActiveTab: 1, Searching: true, Query: "close"}, render.Viewport{Rows: 30}},
		{"no rows", session.New(), render.Viewport{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(Frame(cat, tt.st, tt.vp, NewStyles(catalog.Theme{})))
			want := strings.Join(render.Render(cat, tt.st, tt.vp), "\n")
			if got != want {
				t.Errorf("styled frame differs from plain render\n got: %q\nwant: %q", got, want)
			}
		})
	}
}

func TestFrame_EmptyCatalog(t *testing.T) {
	got := ansi.Strip(Frame(catalog.Catalog{}, session.New(), render.Viewport{}, NewStyles(catalog.Theme{})))
	want := strings.Join(render.Render(catalog.Catalog{}, session.New(), render.Viewport{}), "\n")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStyles_TabUsesCategoryColor(t *testing.T) {
	s := NewStyles(catalog.Theme{})

	git := sample().Categories[0]
	if got := s.Tab(git, true).GetForeground(); got != lipgloss.Color(git.Color) {
		t.Errorf("active tab foreground = %v, want category colour", got)
	}

	zellij := sample().Categories[1]
	if got := s.Tab(zellij, true).GetForeground(); got != lipgloss.Color(catalog.DefaultTheme.Primary) {
		t.Errorf("active tab without colour should use the primary colour, got %v", got)
	}

	if got := s.Tab(git, false).GetForeground(); got != lipgloss.Color(catalog.DefaultTheme.Muted) {
		t.Errorf("inactive tab should be muted, got %v", got)
	}
}

func TestStyles_ThemeDefaults(t *testing.T) {
	s := NewStyles(catalog.Theme{Primary: "#ff0000"})
	if got := s.Header.GetForeground(); got != lipgloss.Color("#ff0000") {
		t.Errorf("Header foreground = %v, want override", got)
	}
	if got := s.Legend.GetForeground(); got != lipgloss.Color(catalog.DefaultTheme.Muted) {
		t.Errorf("Legend foreground = %v, want default muted", got)
	}
}

// Property: styling never changes the text of a frame.
func TestProperty_FrameStripsToRender(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cat := testgen.Catalog(testgen.WithEmpty).Draw(t, "catalog")
		st := session.State{
			ActiveTab: rapid.IntRange(0, 12).Draw(t, "tab"),
			Searching: rapid.Bool().Draw(t, "searching"),
		}
		if st.Searching {
			st.Query = rapid.StringMatching(`[a-z]{0,3}`).Draw(t, "query")
		}
		vp := render.Viewport{Rows: rapid.IntRange(0, 60).Draw(t, "rows")}

		got := ansi.Strip(Frame(cat, st, vp, NewStyles(cat.Theme)))
		want := strings.Join(render.Render(cat, st, vp), "\n")
		if got != want {
			t.Fatalf("styled frame differs from plain render")
		}
	})
}

