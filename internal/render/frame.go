// Package render composes editor state into terminal frames and paints
// them through a backend.
package render

import "github.com/dshills/vellum/internal/render/core"

// LineKind tells the painter what a frame line is. Blank lines carry no
// cells; the painter chooses the placeholder glyph.
type LineKind int

const (
	LineText LineKind = iota
	LineBlank
	LineWelcome
	LineStatus
	LineMessage
)

// Line is one ordered primitive of a frame: a kind plus the cells to
// paint. Cells may be shorter than the frame width; the remainder of the
// line is blank.
type Line struct {
	Kind  LineKind
	Cells []core.Cell
}

// Frame is the complete description of one screen update: every line in
// top-to-bottom order plus the cursor position, 1-based and relative to
// the viewport offsets. A frame is emitted in a single flush so the
// display never shows a torn update.
type Frame struct {
	Width     int
	Lines     []Line
	CursorRow int
	CursorCol int
}

// NewFrame creates an empty frame of the given width.
func NewFrame(width int) *Frame {
	if width < 0 {
		width = 0
	}
	return &Frame{Width: width}
}

// Height returns the number of lines appended so far.
func (f *Frame) Height() int { return len(f.Lines) }

func (f *Frame) append(kind LineKind, cells []core.Cell) {
	if len(cells) > f.Width {
		cells = cells[:f.Width]
	}
	f.Lines = append(f.Lines, Line{Kind: kind, Cells: cells})
}

// Text returns line y as a string, for tests. Blank lines render as the
// painter would paint them.
func (f *Frame) Text(y int) string {
	if y < 0 || y >= len(f.Lines) {
		return ""
	}
	line := f.Lines[y]
	if line.Kind == LineBlank {
		return "~"
	}
	return core.StringFromCells(line.Cells)
}
