package app

import (
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/shortcuts/internal/session"
	"github.com/chatter/shortcuts/internal/ui/help"
)

// Action is a function that executes a host-level binding.
type Action func(m *Model) (Model, tea.Cmd)

// ActionBinding pairs a displayed binding with the action it runs.
type ActionBinding struct {
	help.Binding        // embedded for display (Key, Category, Order)
	Action       Action // nil = display-only (handled by the session)
}

// dispatchKey executes the first enabled binding matching msg that has an
// action. It returns nil, nil when nothing matches.
func dispatchKey(m *Model, msg tea.KeyPressMsg, bindings []ActionBinding) (*Model, tea.Cmd) {
	for _, ab := range bindings {
		if key.Matches(msg, ab.Key) && ab.Action != nil {
			newModel, cmd := ab.Action(m)
			return &newModel, cmd
		}
	}
	return nil, nil
}

// ToHelpBindings extracts the display part of action bindings.
func ToHelpBindings(abs []ActionBinding) []help.Binding {
	result := make([]help.Binding, len(abs))
	for i, ab := range abs {
		result[i] = ab.Binding
	}
	return result
}

// KeyMap describes the keys of the cheat sheet. Most are interpreted by the
// session state machine; they live here so the help overlay can list them.
type KeyMap struct {
	// Navigation
	NextTab key.Binding
	PrevTab key.Binding
	Jump    key.Binding

	// Search
	Search    key.Binding
	Backspace key.Binding
	Escape    key.Binding

	// General
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("⇥", "next category"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("⇧⇥", "previous category"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to category"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete character"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("⎋", "leave search / quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit from anywhere"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle this help"),
		),
	}
}

// keyEvent translates a bubbletea key press into a session event.
func keyEvent(msg tea.KeyPressMsg) session.KeyEvent {
	mods := modifiers(msg.Mod)

	switch msg.Code {
	case tea.KeyEscape:
		return session.Special(session.KeyEscape, mods)
	case tea.KeyTab:
		return session.Special(session.KeyTab, mods)
	case tea.KeyBackspace:
		return session.Special(session.KeyBackspace, mods)
	}

	// Text carries the produced character, already shifted.
	if r, size := utf8.DecodeRuneInString(msg.Text); size > 0 && size == len(msg.Text) {
		return session.KeyEvent{Key: session.KeyChar, Rune: r, Mods: mods}
	}

	// Ctrl and Alt chords produce no text.
	if msg.Text == "" && unicode.IsPrint(msg.Code) {
		return session.KeyEvent{Key: session.KeyChar, Rune: msg.Code, Mods: mods}
	}

	return session.Special(session.KeyOther, mods)
}

func modifiers(mod tea.KeyMod) session.Modifier {
	var out session.Modifier
	if mod&tea.ModShift != 0 {
		out |= session.ModShift
	}
	if mod&tea.ModCtrl != 0 {
		out |= session.ModCtrl
	}
	if mod&tea.ModAlt != 0 {
		out |= session.ModAlt
	}
	return out
}
