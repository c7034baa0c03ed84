// Package session implements the browse/search state machine of the cheat
// sheet. State is a plain value: every transition returns a new State and an
// Outcome telling the host whether to redraw or close the pane.
package session

import (
	"unicode"
	"unicode/utf8"

	"github.com/chatter/shortcuts/internal/catalog"
)

// Outcome is the result of handling one key event.
type Outcome int

const (
	Ignored Outcome = iota // not handled, the host may use the key
	Redraw                 // handled, state may have changed
	Close                  // handled, the host should close the pane
)

func (o Outcome) String() string {
	switch o {
	case Redraw:
		return "redraw"
	case Close:
		return "close"
	default:
		return "ignored"
	}
}

// Handled reports whether the event was consumed.
func (o Outcome) Handled() bool {
	return o != Ignored
}

// State is the navigation and search state of one session.
// Query is always empty while Searching is false.
type State struct {
	ActiveTab int
	Searching bool
	Query     string
}

// New returns the initial state: first tab, browsing, empty query.
func New() State {
	return State{}
}

// Clamp brings ActiveTab into [0, n). With no categories it resets to 0.
func (s State) Clamp(n int) State {
	switch {
	case n <= 0 || s.ActiveTab < 0:
		s.ActiveTab = 0
	case s.ActiveTab >= n:
		s.ActiveTab = n - 1
	}
	return s
}

// Handle applies ev to s. Rules are checked in order and the first match wins.
func (s State) Handle(cat catalog.Catalog, ev KeyEvent) (State, Outcome) {
	n := cat.Len()
	s = s.Clamp(n)
	r, isChar := ev.char()

	switch {
	case ev.Key == KeyEscape:
		if !s.Searching {
			return s, Close
		}
		s.Searching = false
		s.Query = ""
		return s, Redraw

	case !s.Searching && isChar && r == 'q':
		return s, Close

	case !s.Searching && isChar && r == '/':
		s.Searching = true
		s.Query = ""
		return s, Redraw

	case ev.Key == KeyTab:
		if n > 0 {
			if ev.Mods.Has(ModShift) {
				s.ActiveTab = (s.ActiveTab - 1 + n) % n
			} else {
				s.ActiveTab = (s.ActiveTab + 1) % n
			}
		}
		return s, Redraw

	case !s.Searching && isChar && r >= '1' && r <= '9':
		// Digits past the last category are swallowed without effect.
		if d := int(r - '0'); d <= n {
			s.ActiveTab = d - 1
		}
		return s, Redraw

	case s.Searching && isChar && unicode.IsPrint(r):
		s.Query += string(r)
		return s, Redraw

	case s.Searching && ev.Key == KeyBackspace:
		if _, size := utf8.DecodeLastRuneInString(s.Query); size > 0 {
			s.Query = s.Query[:len(s.Query)-size]
		}
		return s, Redraw
	}

	return s, Ignored
}
