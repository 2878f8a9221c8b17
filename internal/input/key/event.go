package key

import (
	"strings"
	"time"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

// NewSpecialEvent creates an event for a named key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods, Timestamp: time.Now()}
}

// IsRune returns true for character key events.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true for a printable character with no Ctrl or Alt held.
// These are the keys that insert themselves into the document.
func (e Event) IsChar() bool {
	return e.IsRune() &&
		!e.Modifiers.HasCtrl() && !e.Modifiers.HasAlt() &&
		unicode.IsPrint(e.Rune)
}

// Chord returns the canonical binding notation for the event:
// "ctrl+s", "alt+enter", "pageup", "a". Ctrl chords normalize their rune
// to lowercase, so terminal input and parsed notation always agree.
// Events with no bindable key return "".
func (e Event) Chord() string {
	var b strings.Builder
	if e.Modifiers.HasCtrl() {
		b.WriteString("ctrl+")
	}
	if e.Modifiers.HasAlt() {
		b.WriteString("alt+")
	}
	switch {
	case e.Key == KeyRune && e.Rune != 0:
		r := e.Rune
		if e.Modifiers.HasCtrl() {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	case e.Key.IsSpecial():
		if e.Modifiers.HasShift() {
			b.WriteString("shift+")
		}
		b.WriteString(e.Key.Name())
	default:
		return ""
	}
	return b.String()
}

// String returns the chord notation, or "none" for unbindable events.
func (e Event) String() string {
	if c := e.Chord(); c != "" {
		return c
	}
	return "none"
}
