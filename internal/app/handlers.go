package app

import (
	"time"

	"github.com/dshills/vellum/internal/input/key"
	"github.com/dshills/vellum/internal/render"
	"github.com/dshills/vellum/internal/render/backend"
)

// specialKeys maps terminal keys onto the logical key set.
var specialKeys = map[backend.Key]key.Key{
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyDelete:    key.KeyDelete,
	backend.KeyTab:       key.KeyTab,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyPageUp:    key.KeyPageUp,
	backend.KeyPageDown:  key.KeyPageDown,
}

// translateKey converts a terminal key event into a logical one.
func translateKey(ev backend.Event) (key.Event, bool) {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}

	if ev.Key == backend.KeyRune {
		return key.NewRuneEvent(ev.Rune, mods), true
	}
	k, ok := specialKeys[ev.Key]
	if !ok {
		return key.Event{}, false
	}
	return key.NewSpecialEvent(k, mods), true
}

func (a *App) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		kev, ok := translateKey(ev)
		if !ok {
			return
		}
		a.handleKey(kev)
	case backend.EventResize:
		a.resize(ev.Width, ev.Height)
	case backend.EventQuit:
		a.quit = true
	}
}

// handleKey dispatches one keystroke. An open prompt consumes every
// key; otherwise script bindings win over configured commands, which
// win over the built-in editing keys. Any key other than the quit
// chord rearms the dirty-quit counter.
func (a *App) handleKey(ev key.Event) {
	if a.prompt != nil {
		a.handlePromptKey(ev)
		return
	}

	a.quitPressed = false
	chord := ev.Chord()

	switch {
	case a.scripts[chord] != "":
		if err := a.engine.RunBinding(a.scripts[chord]); err != nil {
			a.logger.WithComponent("script").Error("binding %s: %v", chord, err)
			a.setMessage(render.ErrorMessage(time.Now(), "script error: %v", err))
		}
	case a.keymap[chord] != "":
		a.runCommand(a.keymap[chord])
	default:
		a.handleEditKey(ev)
	}

	if !a.quitPressed {
		a.quitLeft = a.cfg.QuitTimes
	}
}

func (a *App) handleEditKey(ev key.Event) {
	switch ev.Key {
	case key.KeyEnter:
		a.insertNewline()
	case key.KeyBackspace:
		a.deleteLeft()
	case key.KeyDelete:
		a.deleteRight()
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight:
		a.moveCursor(ev.Key)
	case key.KeyHome:
		a.cursor.Col = 0
	case key.KeyEnd:
		if r := a.doc.Row(a.cursor.Row); r != nil {
			a.cursor.Col = r.RawLen()
		}
	case key.KeyPageUp:
		a.page(-1)
	case key.KeyPageDown:
		a.page(1)
	case key.KeyTab:
		a.insertChar('\t')
	case key.KeyEscape:
		// swallowed, like any unbound control key
	case key.KeyRune:
		if !ev.IsChar() {
			return
		}
		if ev.Rune < 128 {
			a.insertChar(byte(ev.Rune))
			return
		}
		for _, b := range []byte(string(ev.Rune)) {
			a.insertChar(b)
		}
	}
}

func (a *App) handlePromptKey(ev key.Event) {
	result, text := a.prompt.HandleKey(ev)
	if result == PromptActive {
		return
	}
	done := a.onPromptDone
	a.prompt = nil
	a.onPromptDone = nil
	a.message = render.Message{}
	if done != nil {
		done(result, text)
	}
}

func defaultKeymap() map[string]string {
	return map[string]string{
		"ctrl+s": "save",
		"ctrl+q": "quit",
		"ctrl+f": "find",
		"ctrl+e": "eval",
		"ctrl+l": "refresh",
	}
}

// runCommand executes a named editor command. Configuration and
// scripts bind chords to these names.
func (a *App) runCommand(cmd string) {
	switch cmd {
	case "save":
		a.save()
	case "quit":
		a.requestQuit()
	case "find":
		a.startFind()
	case "eval":
		a.startEval()
	case "delete-row":
		a.deleteCurrentRow()
	case "refresh":
		// the screen repaints after every key already
	default:
		a.setMessage(render.ErrorMessage(time.Now(), "unknown command %q", cmd))
	}
}
