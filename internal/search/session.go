// Package search implements the incremental document search session.
package search

import (
	"bytes"

	"github.com/dshills/vellum/internal/editor"
	"github.com/dshills/vellum/internal/syntax"
)

// Move is the navigation input Update consumes, decoded from the prompt
// keystroke by the caller.
type Move int

const (
	// MoveNone means the query text changed: the match anchor resets and
	// the direction returns to forward.
	MoveNone Move = iota
	// MoveNext continues forward from the last match.
	MoveNext
	// MovePrev continues backward from the last match.
	MovePrev
	// MoveReset is sent for Enter/Escape as the session ends.
	MoveReset
)

// Session is one incremental search over a document. It owns the match
// anchor, the scan direction, and the highlight overlay for the row
// currently carrying a match. The caller saves cursor and viewport state
// before Begin and restores them itself on cancel; the session only ever
// touches row tags.
type Session struct {
	doc       *editor.Document
	lastMatch int // row of the previous hit, -1 when none
	forward   bool
	overlay   *overlay
}

// overlay remembers one row's tags from before the match span was
// applied. At most one row carries a match overlay at a time.
type overlay struct {
	row  int
	tags []syntax.Tag
}

// Begin opens a search session over the document.
func Begin(doc *editor.Document) *Session {
	return &Session{doc: doc, lastMatch: -1, forward: true}
}

// Update processes one keystroke of the search: restores the previous
// overlay, applies the navigation move, then scans for the query starting
// one row past the anchor, wrapping at both ends. The first substring
// occurrence in a row's display bytes wins. On a hit the matched span is
// tagged and the cursor position for the hit is returned; with no hit
// within a full pass, nothing changes and ok is false.
func (s *Session) Update(query string, move Move) (cur editor.Cursor, ok bool) {
	s.restoreOverlay()

	switch move {
	case MoveNext:
		s.forward = true
	case MovePrev:
		s.forward = false
	case MoveReset:
		s.lastMatch = -1
		s.forward = true
		return editor.Cursor{}, false
	default:
		s.lastMatch = -1
		s.forward = true
	}

	if query == "" || s.doc.RowCount() == 0 {
		return editor.Cursor{}, false
	}
	if s.lastMatch == -1 {
		s.forward = true
	}
	dir := 1
	if !s.forward {
		dir = -1
	}

	current := s.lastMatch
	for i := 0; i < s.doc.RowCount(); i++ {
		current += dir
		if current == -1 {
			current = s.doc.RowCount() - 1
		} else if current == s.doc.RowCount() {
			current = 0
		}

		row := s.doc.Row(current)
		idx := bytes.Index(row.Display(), []byte(query))
		if idx < 0 {
			continue
		}

		s.lastMatch = current
		s.saveOverlay(row)
		tags := row.Tags()
		for j := idx; j < idx+len(query); j++ {
			tags[j] = syntax.TagMatch
		}
		return editor.Cursor{Row: current, Col: s.doc.RawColumn(current, idx)}, true
	}
	return editor.Cursor{}, false
}

// End closes the session and restores the overlaid row's original tags.
func (s *Session) End() {
	s.restoreOverlay()
	s.lastMatch = -1
	s.forward = true
}

func (s *Session) saveOverlay(row *editor.Row) {
	tags := row.Tags()
	saved := make([]syntax.Tag, len(tags))
	copy(saved, tags)
	s.overlay = &overlay{row: row.Index(), tags: saved}
}

func (s *Session) restoreOverlay() {
	if s.overlay == nil {
		return
	}
	if row := s.doc.Row(s.overlay.row); row != nil {
		tags := row.Tags()
		if len(tags) == len(s.overlay.tags) {
			copy(tags, s.overlay.tags)
		}
	}
	s.overlay = nil
}
