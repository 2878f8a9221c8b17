// Package state persists per-file cursor positions between sessions.
//
// The state file is JSON of the form
//
//	{"files": {"/abs/path": {"row": 12, "col": 4}}}
//
// read with gjson and updated in place with sjson. Remembering
// positions is best-effort: a missing or corrupt file starts empty and
// never blocks editing.
package state

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Position is a remembered cursor location.
type Position struct {
	Row int
	Col int
}

// Store reads and writes the position memory file.
type Store struct {
	path string
	data []byte
}

// Open loads the store at path. The file need not exist; invalid JSON
// is discarded.
func Open(path string) *Store {
	s := &Store{path: path, data: []byte("{}")}
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err == nil && gjson.ValidBytes(data) {
		s.data = data
	}
	return s
}

// DefaultPath returns the position file under the user state directory.
func DefaultPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "vellum", "positions.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "vellum", "positions.json")
}

// Position returns the remembered cursor for file.
func (s *Store) Position(file string) (Position, bool) {
	res := gjson.GetBytes(s.data, s.key(file))
	if !res.Exists() {
		return Position{}, false
	}
	return Position{
		Row: int(res.Get("row").Int()),
		Col: int(res.Get("col").Int()),
	}, true
}

// SetPosition records the cursor for file.
func (s *Store) SetPosition(file string, pos Position) error {
	key := s.key(file)
	data, err := sjson.SetBytes(s.data, key+".row", pos.Row)
	if err != nil {
		return err
	}
	data, err = sjson.SetBytes(data, key+".col", pos.Col)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// Forget removes the entry for file.
func (s *Store) Forget(file string) error {
	data, err := sjson.DeleteBytes(s.data, s.key(file))
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

// Files returns every remembered file path.
func (s *Store) Files() []string {
	var out []string
	gjson.GetBytes(s.data, "files").ForEach(func(k, _ gjson.Result) bool {
		out = append(out, k.String())
		return true
	})
	return out
}

// Save writes the store to disk atomically. An empty store path is a
// no-op.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, s.data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// key builds the gjson path for a file, absolute where possible.
func (s *Store) key(file string) string {
	abs, err := filepath.Abs(file)
	if err != nil {
		abs = file
	}
	return "files." + escapePath(abs)
}

// escapePath escapes gjson path syntax characters in a file path.
func escapePath(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteByte(p[i])
	}
	return b.String()
}
