package syntax

import "testing"

func cProfile() *Profile {
	for _, p := range Builtin() {
		if p.Name == "c" {
			return p
		}
	}
	return nil
}

// classifyAll runs the classifier over consecutive rows, carrying the
// block-comment state from each row into the next.
func classifyAll(h *Highlighter, rows []string) ([][]Tag, []bool) {
	tags := make([][]Tag, len(rows))
	exits := make([]bool, len(rows))
	entering := false
	for i, row := range rows {
		tags[i], exits[i] = h.ClassifyRow([]byte(row), entering)
		entering = exits[i]
	}
	return tags, exits
}

func allTagged(tags []Tag, want Tag) bool {
	for _, t := range tags {
		if t != want {
			return false
		}
	}
	return true
}

func countTag(tags []Tag, want Tag) int {
	n := 0
	for _, t := range tags {
		if t == want {
			n++
		}
	}
	return n
}

func TestClassifyNilProfile(t *testing.T) {
	h := NewHighlighter(nil)
	tags, exit := h.ClassifyRow([]byte("int x = 1; /* c */"), false)
	if exit {
		t.Error("nil profile reported open comment")
	}
	if !allTagged(tags, TagPlain) {
		t.Errorf("nil profile produced non-plain tags: %v", tags)
	}
}

func TestClassifyTagPerByte(t *testing.T) {
	h := NewHighlighter(cProfile())
	for _, line := range []string{"", "int x", "/* a", "a = \"b\\\"c\" + 12.5 // t"} {
		tags, _ := h.ClassifyRow([]byte(line), false)
		if len(tags) != len(line) {
			t.Errorf("line %q: got %d tags, want %d", line, len(tags), len(line))
		}
	}
}

func TestClassifyKeywordBoundary(t *testing.T) {
	h := NewHighlighter(cProfile())

	tags, _ := h.ClassifyRow([]byte("integer"), false)
	if countTag(tags, TagKeywordSecondary) != 0 || countTag(tags, TagKeywordPrimary) != 0 {
		t.Errorf("keyword matched inside word: %v", tags)
	}

	tags, _ = h.ClassifyRow([]byte("int x"), false)
	for i := 0; i < 3; i++ {
		if tags[i] != TagKeywordSecondary {
			t.Errorf("byte %d: got %v, want %v", i, tags[i], TagKeywordSecondary)
		}
	}
	if tags[3] != TagPlain || tags[4] != TagPlain {
		t.Errorf("bytes after keyword wrongly tagged: %v", tags)
	}
}

func TestClassifyKeywordAtRowEnd(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, _ := h.ClassifyRow([]byte("return"), false)
	if !allTagged(tags, TagKeywordPrimary) {
		t.Errorf("keyword at end of row not matched: %v", tags)
	}
}

func TestClassifyKeywordNeedsLeadingSeparator(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, _ := h.ClassifyRow([]byte("xif y"), false)
	if countTag(tags, TagKeywordPrimary) != 0 {
		t.Errorf("keyword matched without word boundary: %v", tags)
	}
}

func TestClassifyLineComment(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, exit := h.ClassifyRow([]byte("x = 1; // trailing"), false)
	if exit {
		t.Error("line comment left block state open")
	}
	start := len("x = 1; ")
	for i := start; i < len(tags); i++ {
		if tags[i] != TagLineComment {
			t.Errorf("byte %d: got %v, want %v", i, tags[i], TagLineComment)
		}
	}
	if tags[0] != TagPlain {
		t.Errorf("byte 0: got %v, want %v", tags[0], TagPlain)
	}
}

func TestClassifyLineCommentInsideString(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, _ := h.ClassifyRow([]byte(`"no // comment"`), false)
	if !allTagged(tags, TagString) {
		t.Errorf("comment matched inside string: %v", tags)
	}
}

func TestClassifyLineCommentInsideBlockComment(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, exit := h.ClassifyRow([]byte("/* still // block"), false)
	if !exit {
		t.Error("block comment not left open")
	}
	if !allTagged(tags, TagBlockComment) {
		t.Errorf("line marker inside block comment changed tags: %v", tags)
	}
}

func TestClassifyBlockCommentSpansRows(t *testing.T) {
	h := NewHighlighter(cProfile())
	rows := []string{"/* start", "middle", "end */", "after"}
	tags, exits := classifyAll(h, rows)

	wantExits := []bool{true, true, false, false}
	for i, want := range wantExits {
		if exits[i] != want {
			t.Errorf("row %d exit state: got %v, want %v", i, exits[i], want)
		}
	}
	for i := 0; i < 3; i++ {
		if countTag(tags[i], TagBlockComment) == 0 {
			t.Errorf("row %d carries no block comment tags", i)
		}
	}
	if !allTagged(tags[0], TagBlockComment) || !allTagged(tags[1], TagBlockComment) {
		t.Error("rows inside the comment not fully tagged")
	}
	if !allTagged(tags[3], TagPlain) {
		t.Errorf("row after comment not plain: %v", tags[3])
	}
}

func TestClassifyBlockCommentEndsSameRow(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, exit := h.ClassifyRow([]byte("/* c */ x"), false)
	if exit {
		t.Error("closed comment reported open")
	}
	for i := 0; i < 7; i++ {
		if tags[i] != TagBlockComment {
			t.Errorf("byte %d: got %v, want %v", i, tags[i], TagBlockComment)
		}
	}
	if tags[8] != TagPlain {
		t.Errorf("byte after comment: got %v, want %v", tags[8], TagPlain)
	}
}

func TestClassifyBlockStartInsideString(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, exit := h.ClassifyRow([]byte(`"/*" x`), false)
	if exit {
		t.Error("block comment opened inside string")
	}
	if countTag(tags, TagBlockComment) != 0 {
		t.Errorf("block marker tagged inside string: %v", tags)
	}
}

func TestClassifyStringEscape(t *testing.T) {
	h := NewHighlighter(cProfile())
	line := `"a\"b"c`
	tags, _ := h.ClassifyRow([]byte(line), false)
	for i := 0; i < 6; i++ {
		if tags[i] != TagString {
			t.Errorf("byte %d: got %v, want %v", i, tags[i], TagString)
		}
	}
	if tags[6] != TagPlain {
		t.Errorf("byte after string: got %v, want %v", tags[6], TagPlain)
	}
}

func TestClassifySingleQuoteString(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, _ := h.ClassifyRow([]byte(`'a' "b'c"`), false)
	if tags[0] != TagString || tags[1] != TagString || tags[2] != TagString {
		t.Errorf("single-quoted string not tagged: %v", tags)
	}
	// The apostrophe inside the double-quoted string does not close it.
	for i := 4; i < 9; i++ {
		if tags[i] != TagString {
			t.Errorf("byte %d: got %v, want %v", i, tags[i], TagString)
		}
	}
}

func TestClassifyUnterminatedStringStopsAtRowEnd(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, exit := h.ClassifyRow([]byte(`x = "open`), false)
	if exit {
		t.Error("string spilled into block comment state")
	}
	for i := 4; i < len(tags); i++ {
		if tags[i] != TagString {
			t.Errorf("byte %d: got %v, want %v", i, tags[i], TagString)
		}
	}
	// Strings do not continue onto the next row.
	next, _ := h.ClassifyRow([]byte("y"), false)
	if next[0] != TagPlain {
		t.Errorf("next row inherited string state: %v", next)
	}
}

func TestClassifyNumbers(t *testing.T) {
	h := NewHighlighter(cProfile())
	cases := []struct {
		line string
		want map[int]Tag
	}{
		{"123", map[int]Tag{0: TagNumber, 1: TagNumber, 2: TagNumber}},
		{"4.25", map[int]Tag{0: TagNumber, 1: TagNumber, 2: TagNumber, 3: TagNumber}},
		{"x1", map[int]Tag{0: TagPlain, 1: TagPlain}},
		{"a 7", map[int]Tag{2: TagNumber}},
		{".5", map[int]Tag{0: TagPlain, 1: TagNumber}},
	}
	for _, tc := range cases {
		tags, _ := h.ClassifyRow([]byte(tc.line), false)
		for i, want := range tc.want {
			if tags[i] != want {
				t.Errorf("%q byte %d: got %v, want %v", tc.line, i, tags[i], want)
			}
		}
	}
}

func TestClassifyNumberAfterSeparator(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, _ := h.ClassifyRow([]byte("x+1"), false)
	if tags[2] != TagNumber {
		t.Errorf("digit after separator: got %v, want %v", tags[2], TagNumber)
	}
}

func TestClassifyReentryAfterBlockEnd(t *testing.T) {
	h := NewHighlighter(cProfile())
	tags, exit := h.ClassifyRow([]byte("end */ int x"), true)
	if exit {
		t.Error("comment still open after end marker")
	}
	for i := 0; i < 6; i++ {
		if tags[i] != TagBlockComment {
			t.Errorf("byte %d: got %v, want %v", i, tags[i], TagBlockComment)
		}
	}
	// The keyword right after the end marker is at a word boundary.
	for i := 7; i < 10; i++ {
		if tags[i] != TagKeywordSecondary {
			t.Errorf("byte %d: got %v, want %v", i, tags[i], TagKeywordSecondary)
		}
	}
}

func TestSeparators(t *testing.T) {
	for _, c := range []byte(",.()+-/*=~%<>[]; \t") {
		if !isSeparator(c) {
			t.Errorf("%q not recognized as separator", c)
		}
	}
	if !isSeparator(0) {
		t.Error("NUL not recognized as separator")
	}
	for _, c := range []byte("ab_19!") {
		if isSeparator(c) {
			t.Errorf("%q wrongly recognized as separator", c)
		}
	}
}
