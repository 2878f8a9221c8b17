package app

import (
	"fmt"

	"github.com/dshills/vellum/internal/input/key"
)

// PromptResult is the state a prompt key leaves the prompt in.
type PromptResult int

const (
	// PromptActive means the prompt is still collecting input.
	PromptActive PromptResult = iota
	// PromptAccepted means Enter confirmed a non-empty input.
	PromptAccepted
	// PromptCancelled means Escape abandoned the prompt.
	PromptCancelled
)

// PromptCallback observes the prompt after every keystroke with the
// current text and the key that produced it. Incremental search hangs
// its scanning off this.
type PromptCallback func(text string, ev key.Event)

// Prompt is the single-line input collector shown in the message row.
type Prompt struct {
	label    string // fmt format with one %s for the text
	buf      []byte
	callback PromptCallback
}

// NewPrompt creates a prompt. The callback may be nil.
func NewPrompt(label string, cb PromptCallback) *Prompt {
	return &Prompt{label: label, callback: cb}
}

// Text returns the input collected so far.
func (p *Prompt) Text() string {
	return string(p.buf)
}

// Render returns the message-row text for the prompt.
func (p *Prompt) Render() string {
	return fmt.Sprintf(p.label, p.buf)
}

// HandleKey advances the prompt with one keystroke. Backspace and
// Delete trim, Escape cancels, Enter accepts a non-empty input, and
// printable characters append. The callback runs after the buffer
// update, including for the accepting or cancelling key.
func (p *Prompt) HandleKey(ev key.Event) (PromptResult, string) {
	result := PromptActive
	switch {
	case ev.Key == key.KeyBackspace || ev.Key == key.KeyDelete:
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}
	case ev.Key == key.KeyEscape:
		result = PromptCancelled
	case ev.Key == key.KeyEnter:
		if len(p.buf) > 0 {
			result = PromptAccepted
		}
	case ev.IsChar() && ev.Rune < 128:
		p.buf = append(p.buf, byte(ev.Rune))
	}

	if p.callback != nil {
		p.callback(string(p.buf), ev)
	}
	return result, string(p.buf)
}
