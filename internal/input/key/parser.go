package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "enter", "escape", "tab", "backspace", "space"
//   - With modifiers: "Ctrl+S", "Alt+Enter", "ctrl+shift+p"
//   - Vim-style: "<C-s>", "<A-x>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}
	if strings.Contains(spec, "+") && len(spec) > 1 {
		return parseModifierStyle(spec)
	}
	return parseKeyPart(spec, ModNone)
}

// parseVimStyle parses the inside of <...> notation: "C-s", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKeyPart(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation. "ctrl++" binds the
// '+' key itself.
func parseModifierStyle(spec string) (Event, error) {
	var keyPart, modSpec string
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		modSpec = strings.TrimSuffix(spec, "++")
	} else {
		idx := strings.LastIndex(spec, "+")
		keyPart = spec[idx+1:]
		modSpec = spec[:idx]
	}
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	for _, p := range strings.Split(modSpec, "+") {
		mod := ModifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKeyPart(keyPart, mods)
}

// parseKeyPart resolves the key name or single character.
func parseKeyPart(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if k := KeyFromName(strings.ToLower(keyPart)); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if strings.EqualFold(keyPart, "space") {
		return NewRuneEvent(' ', mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, keyPart)
}
