package editor

// Cursor is a position in raw-content coordinates. Row may equal
// Document.RowCount, the empty line past the last row where new input
// lands.
type Cursor struct {
	Row int
	Col int
}

// Clamp limits the cursor to addressable positions in the document: the row
// range [0, RowCount] and the current row's raw length.
func (c *Cursor) Clamp(d *Document) {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > d.RowCount() {
		c.Row = d.RowCount()
	}
	max := 0
	if r := d.Row(c.Row); r != nil {
		max = r.RawLen()
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Col > max {
		c.Col = max
	}
}
