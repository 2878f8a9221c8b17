package app

import (
	"fmt"
	"time"

	"github.com/dshills/vellum/internal/input/key"
	"github.com/dshills/vellum/internal/render"
)

// The script engine drives the editor through these methods. They run
// on the event loop goroutine, so they touch state directly.

// StatusMessage shows msg in the message bar.
func (a *App) StatusMessage(msg string) {
	a.setMessage(render.InfoMessage(time.Now(), "%s", msg))
}

// Filename returns the current file name, empty when unnamed.
func (a *App) Filename() string {
	return a.filename
}

// LineCount returns the number of rows in the document.
func (a *App) LineCount() int {
	return a.doc.RowCount()
}

// Line returns the raw text of row n.
func (a *App) Line(n int) (string, bool) {
	r := a.doc.Row(n)
	if r == nil {
		return "", false
	}
	return string(r.Raw()), true
}

// InsertText types text at the cursor, newlines included.
func (a *App) InsertText(text string) {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			a.insertNewline()
		case '\r':
			// stripped, as on file load
		default:
			a.insertChar(text[i])
		}
	}
}

// Bind routes a key chord to the script callback registered under id.
func (a *App) Bind(chord, id string) error {
	ev, err := key.Parse(chord)
	if err != nil {
		return err
	}
	a.scripts[ev.Chord()] = id
	return nil
}

// Option returns the named setting.
func (a *App) Option(name string) (any, bool) {
	switch name {
	case "tab_stop":
		return a.cfg.TabStop, true
	case "quit_times":
		return a.cfg.QuitTimes, true
	case "message_timeout":
		return a.cfg.MessageTimeout, true
	}
	return nil, false
}

// SetOption applies the named setting.
func (a *App) SetOption(name string, value any) error {
	n, ok := optionInt(value)
	if !ok {
		return fmt.Errorf("option %s: expected a number, got %T", name, value)
	}

	switch name {
	case "tab_stop":
		if n < 1 {
			return fmt.Errorf("option tab_stop: must be at least 1, got %d", n)
		}
		a.cfg.TabStop = n
		a.doc.SetTabStop(n)
	case "quit_times":
		if n < 0 {
			return fmt.Errorf("option quit_times: must not be negative, got %d", n)
		}
		a.cfg.QuitTimes = n
		a.quitLeft = n
	case "message_timeout":
		if n < 0 {
			return fmt.Errorf("option message_timeout: must not be negative, got %d", n)
		}
		a.cfg.MessageTimeout = n
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}

func optionInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
