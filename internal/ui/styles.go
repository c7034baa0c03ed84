// Package ui styles rendered cheat sheet frames for the terminal.
package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/chatter/shortcuts/internal/catalog"
)

// Styles holds one lipgloss style per kind of frame line.
type Styles struct {
	Header      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	SearchHint  lipgloss.Style
	SearchQuery lipgloss.Style
	GroupTitle  lipgloss.Style
	Keys        lipgloss.Style
	Description lipgloss.Style
	FooterRule  lipgloss.Style
	Legend      lipgloss.Style
}

// NewStyles builds the styles for theme. Empty theme fields use the
// built-in palette.
func NewStyles(theme catalog.Theme) Styles {
	theme = theme.WithDefaults()

	primary := lipgloss.Color(theme.Primary)
	secondary := lipgloss.Color(theme.Secondary)
	text := lipgloss.Color(theme.Text)
	muted := lipgloss.Color(theme.Muted)
	border := lipgloss.Color(theme.Border)
	highlight := lipgloss.Color(theme.Highlight)

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Background(highlight),

		TabInactive: lipgloss.NewStyle().
			Foreground(muted),

		SearchHint: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		SearchQuery: lipgloss.NewStyle().
			Foreground(secondary),

		GroupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),

		Keys: lipgloss.NewStyle().
			Foreground(primary),

		Description: lipgloss.NewStyle().
			Foreground(text),

		FooterRule: lipgloss.NewStyle().
			Foreground(border),

		Legend: lipgloss.NewStyle().
			Foreground(muted),
	}
}

// Tab returns the style for a category's tab. A category colour overrides the
// theme's primary colour for the active tab.
func (s Styles) Tab(c catalog.Category, active bool) lipgloss.Style {
	if !active {
		return s.TabInactive
	}
	if c.Color != "" {
		return s.TabActive.Foreground(lipgloss.Color(c.Color))
	}
	return s.TabActive
}
