package app

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/chatter/shortcuts/internal/catalog"
)

// keyPress builds the key message bubbletea delivers for a key name.
func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		r, _ := utf8.DecodeRuneInString(k)
		return tea.KeyPressMsg{Code: r, Text: k}
	}
}

// typeText sends each rune of s as a key press.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = update(m, keyPress(string(r)))
	}
	return m
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{Categories: []catalog.Category{
		{
			Name: "Git",
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
		{
			Name: "Tmux",
			Groups: []catalog.Group{{Name: "Sessions", Shortcuts: []catalog.Shortcut{
				{Keys: "tmux ls", Description: "List sessions"},
			}}},
		},
	}}
}

func newTestModel() Model {
	m := New(Options{Catalog: testCatalog()})
	return update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

// isQuit reports whether cmd produces tea.QuitMsg.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
