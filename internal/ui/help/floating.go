package help

import (
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/chatter/shortcuts/internal/catalog"
)

// FloatingHelp renders a modal with every enabled binding grouped by category.
type FloatingHelp struct {
	width    int
	height   int
	bindings []Binding

	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
	footerStyle lipgloss.Style
	headerStyle lipgloss.Style
	keyStyle    lipgloss.Style
	descStyle   lipgloss.Style
}

// NewFloatingHelp creates a modal coloured with theme.
func NewFloatingHelp(theme catalog.Theme) *FloatingHelp {
	theme = theme.WithDefaults()

	return &FloatingHelp{
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(1, 2),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Primary)),
		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Secondary)),
		keyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)),
		descStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),
	}
}

// SetSize sets the outer size of the modal.
func (f *FloatingHelp) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetBindings sets the bindings to display.
func (f *FloatingHelp) SetBindings(bindings []Binding) {
	f.bindings = bindings
}

// View renders the modal, or "" before a size is known.
func (f *FloatingHelp) View() string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}

	innerWidth := f.width - f.borderStyle.GetHorizontalFrameSize()
	innerHeight := f.height - f.borderStyle.GetVerticalFrameSize()

	if innerWidth < 20 || innerHeight < 5 {
		return f.borderStyle.Width(max(innerWidth, 10)).Render("...")
	}

	title := f.titleStyle.Render("Keys")
	footer := f.footerStyle.Render("? to close")

	// Title and footer each take one line.
	contentLines := strings.Split(f.renderContent(f.groupByCategory(), innerWidth), "\n")
	if len(contentLines) > innerHeight-2 {
		contentLines = contentLines[:innerHeight-2]
	}

	upper := lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(contentLines, "\n"))
	inner := lipgloss.Place(innerWidth, innerHeight, lipgloss.Left, lipgloss.Top, upper)

	// Right-align the footer on the last inner line.
	lines := strings.Split(inner, "\n")
	last := len(lines) - 1
	if lipgloss.Width(lines[last]) >= lipgloss.Width(footer) {
		lines[last] = strings.Repeat(" ", max(innerWidth-lipgloss.Width(footer), 0)) + footer
	}

	return f.borderStyle.Render(strings.Join(lines, "\n"))
}

// groupByCategory groups enabled bindings by category, each sorted by Order.
func (f *FloatingHelp) groupByCategory() map[Category][]Binding {
	groups := make(map[Category][]Binding)

	for _, b := range f.bindings {
		if !b.Key.Enabled() {
			continue
		}
		groups[b.Category] = append(groups[b.Category], b)
	}

	for cat := range groups {
		sort.SliceStable(groups[cat], func(i, j int) bool {
			return groups[cat][i].Order < groups[cat][j].Order
		})
	}

	return groups
}

func (f *FloatingHelp) renderContent(groups map[Category][]Binding, availableWidth int) string {
	if len(groups) == 0 {
		return "No keybindings available"
	}

	maxKeyWidth := 0
	for _, bindings := range groups {
		for _, b := range bindings {
			maxKeyWidth = max(maxKeyWidth, lipgloss.Width(b.Key.Help().Key))
		}
	}

	// indent (2) + key + gap (2)
	keyColumnWidth := maxKeyWidth + 2
	descMaxWidth := max(availableWidth-2-keyColumnWidth, 10)

	keyStyle := f.keyStyle.Width(keyColumnWidth)
	descStyle := f.descStyle.MaxWidth(descMaxWidth)

	var lines []string
	for _, cat := range categoryOrder {
		bindings := groups[cat]
		if len(bindings) == 0 {
			continue
		}

		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, f.headerStyle.Render(string(cat)))

		for _, b := range bindings {
			h := b.Key.Help()
			lines = append(lines, "  "+keyStyle.Render(h.Key)+descStyle.Render(h.Desc))
		}
	}

	return strings.Join(lines, "\n")
}
