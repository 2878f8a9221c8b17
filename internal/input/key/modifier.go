package key

import "strings"

// Modifier is a bitmask of modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the modifier is set.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns the mask with the modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// HasCtrl returns true if Ctrl is set.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt returns true if Alt is set.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasShift returns true if Shift is set.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// ModifierFromName resolves a lowercase modifier name. Returns ModNone
// when the name is unknown.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case "ctrl", "control", "c":
		return ModCtrl
	case "alt", "meta", "a", "m":
		return ModAlt
	case "shift", "s":
		return ModShift
	default:
		return ModNone
	}
}
