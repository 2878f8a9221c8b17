package editor

import (
	"bytes"

	"github.com/dshills/vellum/internal/syntax"
)

// DefaultTabStop is the display width tabs expand to.
const DefaultTabStop = 8

// Document is an ordered, mutable sequence of rows with dirty tracking and
// an optional syntax profile. Row indexes stay dense and contiguous; every
// structural edit renumbers the rows at or after the affected index.
type Document struct {
	rows        []*Row
	dirty       int
	tabStop     int
	highlighter *syntax.Highlighter
}

// NewDocument creates an empty document with no syntax profile.
func NewDocument() *Document {
	return &Document{
		tabStop:     DefaultTabStop,
		highlighter: syntax.NewHighlighter(nil),
	}
}

// RowCount returns the number of rows.
func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at index i, or nil if i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// TabStop returns the configured tab stop width.
func (d *Document) TabStop() int { return d.tabStop }

// SetTabStop changes the tab stop width and re-derives every row.
func (d *Document) SetTabStop(w int) {
	if w < 1 || w == d.tabStop {
		return
	}
	d.tabStop = w
	for _, r := range d.rows {
		r.display = ExpandTabs(r.raw, d.tabStop)
	}
	d.rehighlightAll()
}

// Dirty returns the number of content mutations since the last MarkClean.
func (d *Document) Dirty() int { return d.dirty }

// MarkClean resets the dirty counter after successful persistence.
func (d *Document) MarkClean() { d.dirty = 0 }

// Profile returns the active syntax profile, which may be nil.
func (d *Document) Profile() *syntax.Profile {
	return d.highlighter.Profile()
}

// SetProfile replaces the active syntax profile and re-derives every row's
// classification.
func (d *Document) SetProfile(p *syntax.Profile) {
	d.highlighter.SetProfile(p)
	d.rehighlightAll()
}

// DisplayColumn converts a raw column in the given row to a display column.
func (d *Document) DisplayColumn(row, rawCol int) int {
	r := d.Row(row)
	if r == nil {
		return 0
	}
	return DisplayColumn(r.raw, rawCol, d.tabStop)
}

// RawColumn converts a display column in the given row to a raw column.
func (d *Document) RawColumn(row, displayCol int) int {
	r := d.Row(row)
	if r == nil {
		return 0
	}
	return RawColumn(r.raw, displayCol, d.tabStop)
}

// InsertRow inserts a new row at index at, in [0, RowCount]. Content is
// copied. Out-of-range indexes are ignored.
func (d *Document) InsertRow(at int, content []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	r := newRow(at, content)
	// A new row is born assuming it passes its entering comment state
	// through, so the cascade below only continues when the rows after it
	// actually see a different state than before the insert.
	r.continuesBlock = at > 0 && d.rows[at-1].continuesBlock
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = r
	for i := at + 1; i < len(d.rows); i++ {
		d.rows[i].index = i
	}
	d.refreshRow(at)
	d.dirty++
}

// DeleteRow removes the row at index at, in [0, RowCount). Out-of-range
// indexes are ignored.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	for i := at; i < len(d.rows); i++ {
		d.rows[i].index = i
	}
	if at < len(d.rows) {
		d.highlightFrom(at)
	}
	d.dirty++
}

// InsertChar inserts byte c at the given column, clamped to the row's
// length. Out-of-range rows are ignored.
func (d *Document) InsertChar(row, col int, c byte) {
	r := d.Row(row)
	if r == nil {
		return
	}
	r.insertByte(col, c)
	d.refreshRow(row)
	d.dirty++
}

// DeleteChar removes the byte at the given column. Out-of-range positions
// are ignored.
func (d *Document) DeleteChar(row, col int) {
	r := d.Row(row)
	if r == nil || col < 0 || col >= len(r.raw) {
		return
	}
	r.deleteByte(col)
	d.refreshRow(row)
	d.dirty++
}

// SplitRow splits the row at the given column: the bytes from col onward
// move to a new row inserted directly below. The column is clamped to the
// row's length.
func (d *Document) SplitRow(row, col int) {
	r := d.Row(row)
	if r == nil {
		return
	}
	if col < 0 {
		col = 0
	}
	if col > len(r.raw) {
		col = len(r.raw)
	}
	next := newRow(row+1, r.raw[col:])
	next.continuesBlock = r.continuesBlock
	d.rows = append(d.rows, nil)
	copy(d.rows[row+2:], d.rows[row+1:])
	d.rows[row+1] = next
	for i := row + 2; i < len(d.rows); i++ {
		d.rows[i].index = i
	}
	r.raw = r.raw[:col]
	d.refreshRow(row)
	d.refreshRow(row + 1)
	d.dirty++
}

// JoinRow appends the row at the given index onto the previous row and
// removes it. Row 0 cannot be joined.
func (d *Document) JoinRow(row int) {
	if row <= 0 || row >= len(d.rows) {
		return
	}
	prev := d.rows[row-1]
	prev.raw = append(prev.raw, d.rows[row].raw...)
	d.rows = append(d.rows[:row], d.rows[row+1:]...)
	for i := row; i < len(d.rows); i++ {
		d.rows[i].index = i
	}
	d.refreshRow(row - 1)
	d.dirty++
}

// Contents returns the document as flat text, each row followed by a single
// newline.
func (d *Document) Contents() []byte {
	var buf bytes.Buffer
	for _, r := range d.rows {
		buf.Write(r.raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// refreshRow re-derives the display form of row at and reclassifies from
// there.
func (d *Document) refreshRow(at int) {
	d.rows[at].display = ExpandTabs(d.rows[at].raw, d.tabStop)
	d.highlightFrom(at)
}

// highlightFrom reclassifies row at and cascades down the document while
// each row's trailing block-comment state keeps changing. The cascade
// converges in at most RowCount steps because the state is a single boolean
// per row.
func (d *Document) highlightFrom(at int) {
	for i := at; i < len(d.rows); i++ {
		r := d.rows[i]
		entering := i > 0 && d.rows[i-1].continuesBlock
		tags, exit := d.highlighter.ClassifyRow(r.display, entering)
		r.tags = tags
		changed := r.continuesBlock != exit
		r.continuesBlock = exit
		if !changed {
			break
		}
	}
}

// rehighlightAll reclassifies every row top to bottom.
func (d *Document) rehighlightAll() {
	for i, r := range d.rows {
		entering := i > 0 && d.rows[i-1].continuesBlock
		r.tags, r.continuesBlock = d.highlighter.ClassifyRow(r.display, entering)
	}
}
