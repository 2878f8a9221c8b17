package key

import "testing"

func TestKeyNames(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEnter, "enter"},
		{KeyEscape, "escape"},
		{KeyPageUp, "pageup"},
		{KeyRune, ""},
		{KeyNone, ""},
	}
	for _, tt := range tests {
		if got := tt.key.Name(); got != tt.want {
			t.Errorf("Name(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"enter", KeyEnter},
		{"return", KeyEnter},
		{"cr", KeyEnter},
		{"esc", KeyEscape},
		{"bs", KeyBackspace},
		{"del", KeyDelete},
		{"pgdn", KeyPageDown},
		{"bogus", KeyNone},
	}
	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestIsSpecial(t *testing.T) {
	if !KeyDelete.IsSpecial() {
		t.Error("Delete should be special")
	}
	if KeyRune.IsSpecial() || KeyNone.IsSpecial() {
		t.Error("Rune and None are not special")
	}
}

func TestModifierOps(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if !m.HasCtrl() || !m.HasShift() {
		t.Error("expected ctrl and shift set")
	}
	if m.HasAlt() {
		t.Error("alt should not be set")
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"Control", ModCtrl},
		{"c", ModCtrl},
		{"alt", ModAlt},
		{"m", ModAlt},
		{"shift", ModShift},
		{"s", ModShift},
		{"hyper", ModNone},
	}
	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
