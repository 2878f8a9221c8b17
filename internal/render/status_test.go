package render

import (
	"strings"
	"testing"
	"time"

	"github.com/dshills/vellum/internal/render/core"
)

func TestStatusCellsFormat(t *testing.T) {
	info := StatusInfo{Filename: "main.c", Rows: 3, Dirty: true, Filetype: "c", CursorRow: 0}
	cells := statusCells(info, 40)
	if len(cells) != 40 {
		t.Fatalf("status width = %d, want 40", len(cells))
	}
	got := core.StringFromCells(cells)
	if !strings.HasPrefix(got, "main.c - 3 lines (modified)") {
		t.Errorf("status left = %q", got)
	}
	if !strings.HasSuffix(got, "c | 1/3") {
		t.Errorf("status right = %q", got)
	}
	for i, c := range cells {
		if !c.Style.Attributes.Has(core.AttrReverse) {
			t.Fatalf("cell %d not reverse video", i)
		}
	}
}

func TestStatusCellsUnnamedClean(t *testing.T) {
	cells := statusCells(StatusInfo{Rows: 0}, 40)
	got := core.StringFromCells(cells)
	if !strings.HasPrefix(got, "[No Name] - 0 lines ") {
		t.Errorf("status = %q", got)
	}
	if !strings.HasSuffix(got, "no ft | 1/0") {
		t.Errorf("status right = %q", got)
	}
}

func TestStatusCellsTruncatesLongName(t *testing.T) {
	info := StatusInfo{Filename: "a-very-long-file-name-indeed.txt", Rows: 1}
	got := core.StringFromCells(statusCells(info, 60))
	if !strings.HasPrefix(got, "a-very-long-file-nam - 1 lines") {
		t.Errorf("file label not truncated to 20 bytes: %q", got)
	}
}

func TestStatusCellsRightOmittedWhenTight(t *testing.T) {
	// When the right segment never fits exactly, spaces fill to the edge.
	info := StatusInfo{Filename: "f", Rows: 100, Filetype: "plain", CursorRow: 99}
	cells := statusCells(info, 18)
	if len(cells) != 18 {
		t.Fatalf("status width = %d, want 18", len(cells))
	}
	got := core.StringFromCells(cells)
	if strings.Contains(got, "|") {
		t.Errorf("right segment should be omitted: %q", got)
	}
}

func TestStatusCellsNarrowTruncatesLeft(t *testing.T) {
	cells := statusCells(StatusInfo{Filename: "main.c", Rows: 3}, 10)
	if len(cells) != 10 {
		t.Fatalf("status width = %d, want 10", len(cells))
	}
	if got := core.StringFromCells(cells); got != "main.c - 3" {
		t.Errorf("status = %q", got)
	}
}

func TestMessageRender(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"help", HelpMessage(now), HelpBanner},
		{"saved", SavedMessage(now, 42), "42 bytes written to disk"},
		{"quit warning", QuitWarningMessage(now, 2),
			"WARNING!!! File has unsaved changes. Press Ctrl-Q 2 more times to quit."},
		{"info", InfoMessage(now, "loaded %s", "f.txt"), "loaded f.txt"},
		{"error", ErrorMessage(now, "can't save: %s", "denied"), "can't save: denied"},
		{"prompt", PromptMessage(now, "Search: abc"), "Search: abc"},
		{"none", Message{}, ""},
	}
	for _, tt := range tests {
		if got := tt.msg.Render(); got != tt.want {
			t.Errorf("%s: Render = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMessageExpiry(t *testing.T) {
	t0 := time.Now()
	timeout := 5 * time.Second

	m := InfoMessage(t0, "hi")
	if m.Expired(t0.Add(time.Second), timeout) {
		t.Error("fresh message reported expired")
	}
	if !m.Expired(t0.Add(6*time.Second), timeout) {
		t.Error("stale message not expired")
	}
	if (Message{}).Expired(t0, timeout) != true {
		t.Error("zero message should always be expired")
	}
	if PromptMessage(t0, "Search: ").Expired(t0.Add(time.Hour), timeout) {
		t.Error("prompts must not expire")
	}
	if m.Expired(t0.Add(time.Hour), 0) {
		t.Error("non-positive timeout should disable expiry")
	}
}

func TestMessageCellsTruncation(t *testing.T) {
	now := time.Now()
	cells := messageCells(InfoMessage(now, "a long message"), now, time.Minute, 6)
	if got := core.StringFromCells(cells); got != "a long" {
		t.Errorf("truncated message = %q", got)
	}
	if cells := messageCells(InfoMessage(now.Add(-time.Hour), "old"), now, time.Minute, 20); cells != nil {
		t.Errorf("expired message rendered: %v", cells)
	}
}
