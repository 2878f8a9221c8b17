package render

import (
	"time"

	"github.com/dshills/vellum/internal/editor"
	"github.com/dshills/vellum/internal/render/core"
	"github.com/dshills/vellum/internal/render/viewport"
	"github.com/dshills/vellum/internal/syntax"
	"github.com/dshills/vellum/internal/theme"
)

// Scene is everything a frame is composed from.
type Scene struct {
	Doc     *editor.Document
	View    *viewport.Viewport
	Cursor  editor.Cursor
	Status  StatusInfo
	Message Message

	Now            time.Time
	MessageTimeout time.Duration
}

// Compositor turns a scene into a frame: the visible document rows with
// their classification mapped to styles, blank markers past the document
// end, and the two fixed status rows.
type Compositor struct {
	theme   *theme.Theme
	welcome string
}

// NewCompositor creates a compositor. The welcome text is shown a third of
// the way down when the document is empty and unnamed; empty disables it.
func NewCompositor(th *theme.Theme, welcome string) *Compositor {
	return &Compositor{theme: th, welcome: welcome}
}

// Theme returns the active theme.
func (c *Compositor) Theme() *theme.Theme { return c.theme }

// SetTheme replaces the active theme.
func (c *Compositor) SetTheme(th *theme.Theme) { c.theme = th }

// Compose builds one complete frame. The viewport offsets must already
// contain the cursor (Recompute runs first).
func (c *Compositor) Compose(s Scene) *Frame {
	f := NewFrame(s.View.Cols())
	rows := s.View.Rows()

	for y := 0; y < rows; y++ {
		fileRow := s.View.RowOffset() + y
		switch {
		case fileRow < s.Doc.RowCount():
			f.append(LineText, c.textCells(s.Doc.Row(fileRow), s.View.ColOffset(), f.Width))
		case s.Doc.RowCount() == 0 && s.Status.Filename == "" &&
			c.welcome != "" && y == rows/3:
			f.append(LineWelcome, c.welcomeCells(f.Width))
		default:
			f.append(LineBlank, nil)
		}
	}

	f.append(LineStatus, statusCells(s.Status, f.Width))
	f.append(LineMessage, messageCells(s.Message, s.Now, s.MessageTimeout, f.Width))

	displayCol := s.Doc.DisplayColumn(s.Cursor.Row, s.Cursor.Col)
	srow, scol := s.View.ScreenPosition(s.Cursor.Row, displayCol)
	f.CursorRow = srow + 1
	f.CursorCol = scol + 1
	return f
}

// Span is a run of consecutive display bytes sharing one tag.
type Span struct {
	Start, End int // byte range, End exclusive
	Tag        syntax.Tag
}

// Spans collapses a tag slice into runs, one span per color transition.
func Spans(tags []syntax.Tag) []Span {
	var spans []Span
	for i := 0; i < len(tags); {
		j := i + 1
		for j < len(tags) && tags[j] == tags[i] {
			j++
		}
		spans = append(spans, Span{Start: i, End: j, Tag: tags[i]})
		i = j
	}
	return spans
}

// textCells renders the visible slice of one document row. Control bytes
// become reverse-video placeholder glyphs in place of their tag color.
func (c *Compositor) textCells(row *editor.Row, colOffset, width int) []core.Cell {
	display := row.Display()
	if colOffset >= len(display) {
		return nil
	}
	end := colOffset + width
	if end > len(display) {
		end = len(display)
	}
	visible := display[colOffset:end]
	tags := row.Tags()[colOffset:end]

	cells := make([]core.Cell, 0, len(visible))
	for _, sp := range Spans(tags) {
		style := c.theme.Style(sp.Tag)
		for i := sp.Start; i < sp.End; i++ {
			b := visible[i]
			if b < 32 || b == 127 {
				sym := '?'
				if b <= 26 {
					sym = rune('@' + b)
				}
				cells = append(cells, core.NewStyledCell(sym, style.Reverse()))
				continue
			}
			cells = append(cells, core.NewStyledCell(rune(b), style))
		}
	}
	return cells
}

// welcomeCells centers the welcome text behind a leading blank marker.
func (c *Compositor) welcomeCells(width int) []core.Cell {
	text := c.welcome
	if len(text) > width {
		text = text[:width]
	}
	cells := make([]core.Cell, 0, width)
	padding := (width - len(text)) / 2
	if padding > 0 {
		cells = append(cells, core.NewCell('~'))
		padding--
	}
	for ; padding > 0; padding-- {
		cells = append(cells, core.NewCell(' '))
	}
	return append(cells, core.CellsFromString(text, core.DefaultStyle())...)
}
