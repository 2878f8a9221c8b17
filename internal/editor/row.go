package editor

import "github.com/dshills/vellum/internal/syntax"

// Row is one line of the document: raw bytes plus the derived display form
// and per-display-byte classification tags. Rows are created and mutated
// only through their Document, which keeps the derived state current.
type Row struct {
	index          int
	raw            []byte
	display        []byte
	tags           []syntax.Tag
	continuesBlock bool
}

func newRow(index int, content []byte) *Row {
	r := &Row{index: index}
	r.raw = append(r.raw, content...)
	return r
}

// Index returns the row's position in the document.
func (r *Row) Index() int { return r.index }

// Raw returns the row's raw content. Callers must not modify it.
func (r *Row) Raw() []byte { return r.raw }

// RawLen returns the raw content length.
func (r *Row) RawLen() int { return len(r.raw) }

// Display returns the tab-expanded display form. Callers must not modify it.
func (r *Row) Display() []byte { return r.display }

// Tags returns the live classification slice, one tag per display byte.
// Callers may rewrite entries in place (the search overlay does) but must
// not resize it.
func (r *Row) Tags() []syntax.Tag { return r.tags }

// ContinuesBlockComment reports whether an unterminated block comment runs
// past the end of this row into the next.
func (r *Row) ContinuesBlockComment() bool { return r.continuesBlock }

func (r *Row) insertByte(col int, c byte) {
	if col < 0 || col > len(r.raw) {
		col = len(r.raw)
	}
	r.raw = append(r.raw, 0)
	copy(r.raw[col+1:], r.raw[col:])
	r.raw[col] = c
}

func (r *Row) deleteByte(col int) {
	if col < 0 || col >= len(r.raw) {
		return
	}
	r.raw = append(r.raw[:col], r.raw[col+1:]...)
}
