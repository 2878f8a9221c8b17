// Package viewport tracks which part of the document is visible.
package viewport

// Viewport holds the scroll offsets and the size of the text area, in rows
// and display columns. Offsets follow the cursor: Recompute pulls the
// offset up when the cursor moves above the window and pushes it down just
// far enough that the cursor row is the last visible one when it moves
// below. It never centers and never overshoots.
type Viewport struct {
	rowOffset int
	colOffset int
	rows      int
	cols      int
}

// New creates a viewport with the given text area size.
func New(rows, cols int) *Viewport {
	return &Viewport{rows: rows, cols: cols}
}

// RowOffset returns the index of the first visible document row.
func (v *Viewport) RowOffset() int { return v.rowOffset }

// ColOffset returns the first visible display column.
func (v *Viewport) ColOffset() int { return v.colOffset }

// Rows returns the text area height.
func (v *Viewport) Rows() int { return v.rows }

// Cols returns the text area width.
func (v *Viewport) Cols() int { return v.cols }

// Resize sets the text area size. Offsets are left alone; the next
// Recompute brings the cursor back into view.
func (v *Viewport) Resize(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	v.rows = rows
	v.cols = cols
}

// SetOffsets replaces both offsets directly. Used when restoring a saved
// position and when forcing a search hit to the top of the window.
func (v *Viewport) SetOffsets(row, col int) {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	v.rowOffset = row
	v.colOffset = col
}

// Recompute adjusts the offsets so the cursor is visible. Runs once per
// frame, before compositing.
func (v *Viewport) Recompute(cursorRow, displayCol int) {
	if cursorRow < v.rowOffset {
		v.rowOffset = cursorRow
	}
	if cursorRow >= v.rowOffset+v.rows {
		v.rowOffset = cursorRow - v.rows + 1
	}
	if displayCol < v.colOffset {
		v.colOffset = displayCol
	}
	if displayCol >= v.colOffset+v.cols {
		v.colOffset = displayCol - v.cols + 1
	}
}

// Contains reports whether the document row is inside the visible window.
func (v *Viewport) Contains(row int) bool {
	return row >= v.rowOffset && row < v.rowOffset+v.rows
}

// ScreenPosition converts a document position to 0-based screen
// coordinates relative to the current offsets.
func (v *Viewport) ScreenPosition(cursorRow, displayCol int) (row, col int) {
	return cursorRow - v.rowOffset, displayCol - v.colOffset
}
