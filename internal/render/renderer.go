package render

import (
	"github.com/dshills/vellum/internal/render/backend"
	"github.com/dshills/vellum/internal/render/core"
)

// Renderer paints frames onto a backend. Each frame lands in exactly one
// Show so the terminal never displays a partial update.
type Renderer struct {
	backend backend.Backend
	lastW   int
	lastH   int
}

// NewRenderer creates a renderer for the given backend.
func NewRenderer(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// Present paints the frame. The cursor is hidden while cells are written
// and restored at the frame's cursor position before the single flush.
func (r *Renderer) Present(f *Frame) {
	b := r.backend

	if f.Width != r.lastW || f.Height() != r.lastH {
		b.Clear()
		r.lastW = f.Width
		r.lastH = f.Height()
	}

	b.HideCursor()
	for y, line := range f.Lines {
		x := 0
		if line.Kind == LineBlank {
			b.SetCell(0, y, core.NewCell('~'))
			x = 1
		} else {
			for i, cell := range line.Cells {
				if i >= f.Width {
					break
				}
				b.SetCell(i, y, cell)
			}
			if len(line.Cells) < f.Width {
				x = len(line.Cells)
			} else {
				x = f.Width
			}
		}
		for ; x < f.Width; x++ {
			b.SetCell(x, y, core.EmptyCell())
		}
	}
	if f.CursorRow >= 1 && f.CursorCol >= 1 {
		b.ShowCursor(f.CursorCol-1, f.CursorRow-1)
	}
	b.Show()
}
