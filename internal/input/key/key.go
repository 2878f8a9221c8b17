// Package key models logical keyboard input: the closed key set the
// editor responds to, plus the textual notation used for bindings in
// configuration and scripts.
package key

// Key identifies a key. Character input uses KeyRune with the Rune field.
type Key int

// The closed key set.
const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// keyNames maps special keys to their canonical lowercase names.
var keyNames = map[Key]string{
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
}

// keyAliases maps accepted spellings to keys, canonical names included.
var keyAliases = map[string]Key{
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"tab":       KeyTab,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
}

// Name returns the canonical lowercase name of a special key, or "" for
// KeyNone and KeyRune.
func (k Key) Name() string {
	return keyNames[k]
}

// IsSpecial returns true for named non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// KeyFromName resolves a lowercase key name or alias. Returns KeyNone
// when the name is unknown.
func KeyFromName(name string) Key {
	return keyAliases[name]
}
