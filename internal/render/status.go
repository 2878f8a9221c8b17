package render

import (
	"fmt"
	"time"

	"github.com/dshills/vellum/internal/render/core"
)

// HelpBanner is the startup hint shown in the message row.
const HelpBanner = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// MessageKind identifies what a transient message reports. Messages are
// structured values; the text is produced at composite time.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageHelp
	MessageInfo
	MessageError
	MessagePrompt
	MessageSaved
	MessageQuitWarning
)

// Message is a transient status-row message. Info, Error, and Prompt carry
// preformatted text; Saved carries the byte count and QuitWarning the
// remaining confirmation presses.
type Message struct {
	Kind      MessageKind
	Text      string
	Bytes     int
	Remaining int
	Time      time.Time
}

// HelpMessage returns the startup help banner.
func HelpMessage(now time.Time) Message {
	return Message{Kind: MessageHelp, Time: now}
}

// InfoMessage returns a formatted informational message.
func InfoMessage(now time.Time, format string, args ...any) Message {
	return Message{Kind: MessageInfo, Text: fmt.Sprintf(format, args...), Time: now}
}

// ErrorMessage returns a formatted error message.
func ErrorMessage(now time.Time, format string, args ...any) Message {
	return Message{Kind: MessageError, Text: fmt.Sprintf(format, args...), Time: now}
}

// PromptMessage returns the message shown while a prompt is active.
// Prompts never expire.
func PromptMessage(now time.Time, text string) Message {
	return Message{Kind: MessagePrompt, Text: text, Time: now}
}

// SavedMessage reports a successful save of n bytes.
func SavedMessage(now time.Time, n int) Message {
	return Message{Kind: MessageSaved, Bytes: n, Time: now}
}

// QuitWarningMessage warns about unsaved changes with the number of
// confirmation presses still required.
func QuitWarningMessage(now time.Time, remaining int) Message {
	return Message{Kind: MessageQuitWarning, Remaining: remaining, Time: now}
}

// Render produces the display text for the message.
func (m Message) Render() string {
	switch m.Kind {
	case MessageHelp:
		return HelpBanner
	case MessageSaved:
		return fmt.Sprintf("%d bytes written to disk", m.Bytes)
	case MessageQuitWarning:
		return fmt.Sprintf("WARNING!!! File has unsaved changes. "+
			"Press Ctrl-Q %d more times to quit.", m.Remaining)
	case MessageInfo, MessageError, MessagePrompt:
		return m.Text
	default:
		return ""
	}
}

// Expired reports whether the message should no longer be shown. Prompts
// stay visible while active; a non-positive timeout disables expiry.
func (m Message) Expired(now time.Time, timeout time.Duration) bool {
	switch {
	case m.Kind == MessageNone:
		return true
	case m.Kind == MessagePrompt:
		return false
	case timeout <= 0:
		return false
	default:
		return now.Sub(m.Time) > timeout
	}
}

// StatusInfo is the data summarized in the inverted status row.
type StatusInfo struct {
	Filename  string // empty means unnamed
	Rows      int
	Dirty     bool
	Filetype  string // empty means no filetype
	CursorRow int    // 0-based
}

// statusCells renders the status row: file label truncated to 20 bytes,
// row count and dirty marker on the left; filetype and 1-based position on
// the right, printed only when it fits exactly against the edge.
func statusCells(info StatusInfo, width int) []core.Cell {
	style := core.DefaultStyle().Reverse()

	name := info.Filename
	if name == "" {
		name = "[No Name]"
	}
	dirty := ""
	if info.Dirty {
		dirty = "(modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines %s", name, info.Rows, dirty)
	if len(left) > width {
		left = left[:width]
	}

	ft := info.Filetype
	if ft == "" {
		ft = "no ft"
	}
	right := fmt.Sprintf("%s | %d/%d", ft, info.CursorRow+1, info.Rows)

	cells := core.CellsFromString(left, style)
	for len(cells) < width {
		if width-len(cells) == len(right) {
			cells = append(cells, core.CellsFromString(right, style)...)
			break
		}
		cells = append(cells, core.NewStyledCell(' ', style))
	}
	return cells
}

// messageCells renders the transient message row, empty once expired.
func messageCells(m Message, now time.Time, timeout time.Duration, width int) []core.Cell {
	if m.Expired(now, timeout) {
		return nil
	}
	text := m.Render()
	if len(text) > width {
		text = text[:width]
	}
	return core.CellsFromString(text, core.DefaultStyle())
}
