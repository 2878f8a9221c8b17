// Package config loads and watches the vellum configuration file.
//
// Configuration is TOML. A missing file is not an error: defaults apply.
// The loader reads through a small FileSystem abstraction so tests can
// supply in-memory files, and Watcher delivers change events for live
// reload without the caller polling.
package config

import (
	"errors"
	"fmt"

	"github.com/dshills/vellum/internal/input/key"
	"github.com/dshills/vellum/internal/syntax"
)

// ErrInvalidSetting indicates a configuration value that parsed but
// cannot be applied.
var ErrInvalidSetting = errors.New("invalid setting")

// Config holds every user-tunable setting.
type Config struct {
	// TabStop is the column width of a tab character.
	TabStop int `toml:"tab_stop"`

	// QuitTimes is how many quit presses abandon unsaved changes.
	QuitTimes int `toml:"quit_times"`

	// MessageTimeout is the status message lifetime in seconds.
	// Zero keeps messages until replaced.
	MessageTimeout int `toml:"message_timeout"`

	// Theme maps highlight element names to hex colors.
	Theme map[string]string `toml:"theme"`

	// Keys maps chord notation ("ctrl+s") to editor command names,
	// overriding the built-in bindings.
	Keys map[string]string `toml:"keys"`

	// ScriptPath is the Lua init script, run once at startup.
	ScriptPath string `toml:"script"`

	// StatePath overrides the default cursor position memory file.
	StatePath string `toml:"state_file"`

	// Syntax adds user-defined highlight profiles. They are matched
	// before the built-in ones.
	Syntax []SyntaxConfig `toml:"syntax"`
}

// SyntaxConfig describes one user-defined highlight profile.
type SyntaxConfig struct {
	Name              string   `toml:"name"`
	Patterns          []string `toml:"patterns"`
	Keywords          []string `toml:"keywords"`
	Types             []string `toml:"types"`
	LineComment       string   `toml:"line_comment"`
	BlockCommentStart string   `toml:"block_comment_start"`
	BlockCommentEnd   string   `toml:"block_comment_end"`
	Numbers           bool     `toml:"numbers"`
	Strings           bool     `toml:"strings"`
}

// ToProfile converts the entry to a highlight profile.
func (sc SyntaxConfig) ToProfile() *syntax.Profile {
	return &syntax.Profile{
		Name:              sc.Name,
		FilePatterns:      sc.Patterns,
		PrimaryKeywords:   sc.Keywords,
		SecondaryKeywords: sc.Types,
		LineComment:       sc.LineComment,
		BlockCommentStart: sc.BlockCommentStart,
		BlockCommentEnd:   sc.BlockCommentEnd,
		Numbers:           sc.Numbers,
		Strings:           sc.Strings,
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		TabStop:        8,
		QuitTimes:      3,
		MessageTimeout: 5,
	}
}

// Validate checks that every setting can be applied.
func (c *Config) Validate() error {
	if c.TabStop < 1 {
		return fmt.Errorf("%w: tab_stop must be at least 1, got %d", ErrInvalidSetting, c.TabStop)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("%w: quit_times must not be negative, got %d", ErrInvalidSetting, c.QuitTimes)
	}
	if c.MessageTimeout < 0 {
		return fmt.Errorf("%w: message_timeout must not be negative, got %d", ErrInvalidSetting, c.MessageTimeout)
	}
	for chord, command := range c.Keys {
		if _, err := key.Parse(chord); err != nil {
			return fmt.Errorf("%w: key %q: %v", ErrInvalidSetting, chord, err)
		}
		if command == "" {
			return fmt.Errorf("%w: key %q has no command", ErrInvalidSetting, chord)
		}
	}
	for i, sc := range c.Syntax {
		if sc.Name == "" {
			return fmt.Errorf("%w: syntax entry %d has no name", ErrInvalidSetting, i)
		}
		if len(sc.Patterns) == 0 {
			return fmt.Errorf("%w: syntax %q has no patterns", ErrInvalidSetting, sc.Name)
		}
		if (sc.BlockCommentStart == "") != (sc.BlockCommentEnd == "") {
			return fmt.Errorf("%w: syntax %q needs both block comment delimiters or neither", ErrInvalidSetting, sc.Name)
		}
	}
	return nil
}

// Profiles returns the user-defined highlight profiles followed by the
// built-in ones, in detection order.
func (c *Config) Profiles() []*syntax.Profile {
	builtin := syntax.Builtin()
	out := make([]*syntax.Profile, 0, len(c.Syntax)+len(builtin))
	for _, sc := range c.Syntax {
		out = append(out, sc.ToProfile())
	}
	return append(out, builtin...)
}
