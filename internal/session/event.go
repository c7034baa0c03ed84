package session

// Key is the logical identity of a key event.
type Key int

const (
	KeyOther Key = iota
	KeyChar
	KeyEscape
	KeyTab
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyChar:
		return "char"
	case KeyEscape:
		return "esc"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	default:
		return "other"
	}
}

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota // reverses Tab
	ModCtrl
	ModAlt
)

// Has reports whether all modifiers in m are held.
func (mods Modifier) Has(m Modifier) bool {
	return mods&m == m
}

// KeyEvent is one discrete key press delivered by the host.
// Rune is only meaningful when Key is KeyChar.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mods Modifier
}

// Char builds a plain character event.
func Char(r rune) KeyEvent {
	return KeyEvent{Key: KeyChar, Rune: r}
}

// Special builds an event for a non-character key.
func Special(k Key, mods Modifier) KeyEvent {
	return KeyEvent{Key: k, Mods: mods}
}

// char returns the typed rune for a character event without Ctrl or Alt held.
func (e KeyEvent) char() (rune, bool) {
	if e.Key != KeyChar || e.Mods.Has(ModCtrl) || e.Mods.Has(ModAlt) {
		return 0, false
	}
	return e.Rune, true
}
