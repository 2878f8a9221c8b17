// Package theme maps syntax classifications to display styles.
package theme

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/vellum/internal/render/core"
	"github.com/dshills/vellum/internal/syntax"
)

// Theme assigns a display style to every classification tag.
type Theme struct {
	styles [syntax.TagCount]core.Style
}

// Default returns the classic ANSI editor scheme: comments cyan, primary
// keywords yellow, secondary green, strings magenta, numbers red, search
// matches blue, plain text in the terminal's default colors.
func Default() *Theme {
	t := &Theme{}
	for i := range t.styles {
		t.styles[i] = core.DefaultStyle()
	}
	t.styles[syntax.TagLineComment] = core.NewStyle(core.ColorFromIndex(core.PaletteCyan))
	t.styles[syntax.TagBlockComment] = core.NewStyle(core.ColorFromIndex(core.PaletteCyan))
	t.styles[syntax.TagKeywordPrimary] = core.NewStyle(core.ColorFromIndex(core.PaletteYellow))
	t.styles[syntax.TagKeywordSecondary] = core.NewStyle(core.ColorFromIndex(core.PaletteGreen))
	t.styles[syntax.TagString] = core.NewStyle(core.ColorFromIndex(core.PaletteMagenta))
	t.styles[syntax.TagNumber] = core.NewStyle(core.ColorFromIndex(core.PaletteRed))
	t.styles[syntax.TagMatch] = core.NewStyle(core.ColorFromIndex(core.PaletteBlue))
	return t
}

// Style returns the style for the given tag. Unknown tags render plain.
func (t *Theme) Style(tag syntax.Tag) core.Style {
	if tag >= syntax.TagCount {
		return t.styles[syntax.TagPlain]
	}
	return t.styles[tag]
}

// SetStyle replaces the style for a tag.
func (t *Theme) SetStyle(tag syntax.Tag, style core.Style) {
	if tag < syntax.TagCount {
		t.styles[tag] = style
	}
}

// Apply overrides tag styles from a map of tag name to hex color, as read
// from configuration. Entries that fail to parse keep their current style
// and are reported in the returned errors.
func (t *Theme) Apply(overrides map[string]string) []error {
	var errs []error
	for name, hex := range overrides {
		tag, ok := syntax.TagFromString(name)
		if !ok {
			errs = append(errs, fmt.Errorf("theme: unknown element %q", name))
			continue
		}
		c, err := ParseHex(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme: %s: %w", name, err))
			continue
		}
		t.styles[tag] = core.NewStyle(c)
	}
	return errs
}

// ParseHex parses a hex color in "#rrggbb" or "#rgb" form, with or
// without the leading hash.
func ParseHex(s string) (core.Color, error) {
	h := s
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	c, err := colorful.Hex(strings.ToLower(h))
	if err != nil {
		return core.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return core.ColorFromRGB(r, g, b), nil
}
