// Package editor provides the document model: rows of raw bytes, their
// derived display form, and the structural edits that mutate them.
package editor

// ExpandTabs renders raw bytes with each tab expanded to the next multiple
// of tabStop, minimum one space.
func ExpandTabs(raw []byte, tabStop int) []byte {
	out := make([]byte, 0, len(raw))
	for _, c := range raw {
		if c == '\t' {
			out = append(out, ' ')
			for len(out)%tabStop != 0 {
				out = append(out, ' ')
			}
		} else {
			out = append(out, c)
		}
	}
	return out
}

// DisplayColumn converts a raw column to its display column under the same
// tab expansion rule used by ExpandTabs.
func DisplayColumn(raw []byte, rawCol, tabStop int) int {
	col := 0
	for i := 0; i < rawCol && i < len(raw); i++ {
		if raw[i] == '\t' {
			col += (tabStop - 1) - (col % tabStop)
		}
		col++
	}
	return col
}

// RawColumn converts a display column back to the raw column that produced
// it. A display column inside a tab's expansion resolves to the tab's own
// raw index; a column at or past the end of the expansion resolves to
// len(raw). For any raw column c,
// RawColumn(raw, DisplayColumn(raw, c, w), w) == c.
func RawColumn(raw []byte, displayCol, tabStop int) int {
	col := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\t' {
			col += (tabStop - 1) - (col % tabStop)
		}
		col++
		if col > displayCol {
			return i
		}
	}
	return len(raw)
}
