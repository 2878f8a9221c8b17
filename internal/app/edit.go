package app

import (
	"github.com/dshills/vellum/internal/input/key"
)

// moveCursor applies one arrow-key step. Left at column zero wraps to
// the end of the previous row, right at the end of a row wraps to the
// start of the next, and vertical moves snap the column to the length
// of the landing row.
func (a *App) moveCursor(k key.Key) {
	row := a.doc.Row(a.cursor.Row)

	switch k {
	case key.KeyLeft:
		if a.cursor.Col > 0 {
			a.cursor.Col--
		} else if a.cursor.Row > 0 {
			a.cursor.Row--
			a.cursor.Col = a.doc.Row(a.cursor.Row).RawLen()
		}
	case key.KeyRight:
		if row != nil && a.cursor.Col < row.RawLen() {
			a.cursor.Col++
		} else if row != nil && a.cursor.Col == row.RawLen() {
			a.cursor.Row++
			a.cursor.Col = 0
		}
	case key.KeyUp:
		if a.cursor.Row > 0 {
			a.cursor.Row--
		}
	case key.KeyDown:
		if a.cursor.Row < a.doc.RowCount() {
			a.cursor.Row++
		}
	}

	rowLen := 0
	if r := a.doc.Row(a.cursor.Row); r != nil {
		rowLen = r.RawLen()
	}
	if a.cursor.Col > rowLen {
		a.cursor.Col = rowLen
	}
}

// page moves the cursor a full screen up (dir < 0) or down. The
// cursor first jumps to the window edge, then steps one row at a time
// so every landing row snaps the column the same way arrows do.
func (a *App) page(dir int) {
	if dir < 0 {
		a.cursor.Row = a.view.RowOffset()
	} else {
		a.cursor.Row = a.view.RowOffset() + a.view.Rows() - 1
		if a.cursor.Row > a.doc.RowCount() {
			a.cursor.Row = a.doc.RowCount()
		}
	}

	step := key.KeyDown
	if dir < 0 {
		step = key.KeyUp
	}
	for times := a.view.Rows(); times > 0; times-- {
		a.moveCursor(step)
	}
}

// insertChar types one byte at the cursor. On the line past the last
// row a new row appears first.
func (a *App) insertChar(b byte) {
	if a.cursor.Row == a.doc.RowCount() {
		a.doc.InsertRow(a.doc.RowCount(), nil)
	}
	a.doc.InsertChar(a.cursor.Row, a.cursor.Col, b)
	a.cursor.Col++
}

// insertNewline breaks the current row at the cursor and moves to the
// start of the new row.
func (a *App) insertNewline() {
	if a.cursor.Col == 0 {
		a.doc.InsertRow(a.cursor.Row, nil)
	} else {
		a.doc.SplitRow(a.cursor.Row, a.cursor.Col)
	}
	a.cursor.Row++
	a.cursor.Col = 0
}

// deleteLeft removes the byte before the cursor. At column zero the
// current row joins the end of the previous one.
func (a *App) deleteLeft() {
	if a.cursor.Row == a.doc.RowCount() {
		return
	}
	if a.cursor.Col == 0 && a.cursor.Row == 0 {
		return
	}

	if a.cursor.Col > 0 {
		a.doc.DeleteChar(a.cursor.Row, a.cursor.Col-1)
		a.cursor.Col--
		return
	}
	a.cursor.Col = a.doc.Row(a.cursor.Row - 1).RawLen()
	a.doc.JoinRow(a.cursor.Row)
	a.cursor.Row--
}

// deleteRight removes the byte under the cursor, joining the next row
// up when the cursor sits at the end of a row.
func (a *App) deleteRight() {
	a.moveCursor(key.KeyRight)
	a.deleteLeft()
}

// deleteCurrentRow drops the whole row under the cursor.
func (a *App) deleteCurrentRow() {
	if a.cursor.Row >= a.doc.RowCount() {
		return
	}
	a.doc.DeleteRow(a.cursor.Row)
	a.cursor.Clamp(a.doc)
}
