package config

import (
	"errors"
	"io/fs"
	"testing"
)

// memFS is an in-memory FileSystem for loader tests.
type memFS struct {
	files map[string][]byte
}

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoaderWithFS(memFS{}, "/nope/vellum.toml")

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TabStop != 8 || cfg.QuitTimes != 3 {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	l := NewLoader("")

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TabStop != 8 {
		t.Errorf("TabStop = %d, want default 8", cfg.TabStop)
	}
}

func TestLoadFull(t *testing.T) {
	doc := []byte(`
tab_stop = 4
quit_times = 1
message_timeout = 3
script = "init.lua"
state_file = "/tmp/positions.json"

[theme]
comment = "#00cccc"
keyword = "#cccc00"

[keys]
"ctrl+k" = "delete-row"

[[syntax]]
name = "rust"
patterns = [".rs"]
keywords = ["fn", "let", "match"]
types = ["i32", "u8"]
line_comment = "//"
block_comment_start = "/*"
block_comment_end = "*/"
numbers = true
strings = true
`)
	l := NewLoaderWithFS(memFS{files: map[string][]byte{"/c/vellum.toml": doc}}, "/c/vellum.toml")

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TabStop != 4 {
		t.Errorf("TabStop = %d, want 4", cfg.TabStop)
	}
	if cfg.QuitTimes != 1 {
		t.Errorf("QuitTimes = %d, want 1", cfg.QuitTimes)
	}
	if cfg.MessageTimeout != 3 {
		t.Errorf("MessageTimeout = %d, want 3", cfg.MessageTimeout)
	}
	if cfg.ScriptPath != "init.lua" {
		t.Errorf("ScriptPath = %q, want init.lua", cfg.ScriptPath)
	}
	if cfg.StatePath != "/tmp/positions.json" {
		t.Errorf("StatePath = %q", cfg.StatePath)
	}
	if cfg.Theme["comment"] != "#00cccc" {
		t.Errorf("Theme[comment] = %q, want #00cccc", cfg.Theme["comment"])
	}
	if cfg.Keys["ctrl+k"] != "delete-row" {
		t.Errorf("Keys[ctrl+k] = %q, want delete-row", cfg.Keys["ctrl+k"])
	}
	if len(cfg.Syntax) != 1 {
		t.Fatalf("Syntax count = %d, want 1", len(cfg.Syntax))
	}
	if cfg.Syntax[0].Name != "rust" {
		t.Errorf("Syntax name = %q, want rust", cfg.Syntax[0].Name)
	}
	if len(cfg.Syntax[0].Keywords) != 3 {
		t.Errorf("Keywords = %v, want 3 entries", cfg.Syntax[0].Keywords)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	doc := []byte("tab_stop = 2\n")
	l := NewLoaderWithFS(memFS{files: map[string][]byte{"/c/vellum.toml": doc}}, "/c/vellum.toml")

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TabStop != 2 {
		t.Errorf("TabStop = %d, want 2", cfg.TabStop)
	}
	if cfg.QuitTimes != 3 {
		t.Errorf("QuitTimes = %d, want default 3", cfg.QuitTimes)
	}
	if cfg.MessageTimeout != 5 {
		t.Errorf("MessageTimeout = %d, want default 5", cfg.MessageTimeout)
	}
}

func TestLoadParseError(t *testing.T) {
	doc := []byte("tab_stop = [not toml\n")
	l := NewLoaderWithFS(memFS{files: map[string][]byte{"/c/vellum.toml": doc}}, "/c/vellum.toml")

	_, err := l.Load()
	if err == nil {
		t.Fatal("Load() = nil, want parse error")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %T, want *ParseError", err)
	}
	if perr.Path != "/c/vellum.toml" {
		t.Errorf("ParseError.Path = %q", perr.Path)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError.Unwrap() = nil")
	}
}

func TestLoadInvalidSetting(t *testing.T) {
	doc := []byte("tab_stop = 0\n")
	l := NewLoaderWithFS(memFS{files: map[string][]byte{"/c/vellum.toml": doc}}, "/c/vellum.toml")

	_, err := l.Load()
	if !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("Load() error = %v, want ErrInvalidSetting", err)
	}
}
