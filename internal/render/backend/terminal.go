package backend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vellum/internal/render/core"
)

// Terminal is the tcell-backed terminal backend. It owns the real screen:
// raw mode, input decoding, cell painting, and cursor control.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates an uninitialized terminal backend.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Init acquires the terminal and switches it to cell-addressed mode.
func (t *Terminal) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	t.screen = screen
	return nil
}

// Fini restores the terminal to its prior state. Safe to call more than
// once.
func (t *Terminal) Fini() {
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
}

func (t *Terminal) Size() (int, int) {
	if t.screen == nil {
		return 0, 0
	}
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	if t.screen == nil {
		return
	}
	t.screen.SetContent(x, y, cell.Rune, nil, toTcellStyle(cell.Style))
}

func (t *Terminal) Clear() {
	if t.screen != nil {
		t.screen.Clear()
	}
}

func (t *Terminal) Show() {
	if t.screen != nil {
		t.screen.Show()
	}
}

func (t *Terminal) ShowCursor(x, y int) {
	if t.screen != nil {
		t.screen.ShowCursor(x, y)
	}
}

func (t *Terminal) HideCursor() {
	if t.screen != nil {
		t.screen.HideCursor()
	}
}

// PollEvent blocks until the next event. After Fini or PostQuit it returns
// an EventQuit so the polling goroutine can exit.
func (t *Terminal) PollEvent() Event {
	if t.screen == nil {
		return Event{Type: EventQuit}
	}
	for {
		ev := t.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			return translateKey(e)
		case *tcell.EventResize:
			w, h := e.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			return Event{Type: EventQuit}
		case nil:
			return Event{Type: EventQuit}
		}
		// Other tcell events (mouse, paste, focus) are not used.
	}
}

func (t *Terminal) PostQuit() {
	if t.screen != nil {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

func (t *Terminal) Beep() {
	if t.screen != nil {
		_ = t.screen.Beep()
	}
}

// translateKey maps a tcell key event to a backend event. Control chords
// arrive from tcell as key codes 1-26 and come out as KeyRune with ModCtrl
// so every chord has exactly one representation.
func translateKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey, Mod: translateMods(ev.Modifiers())}

	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tcell.KeyDelete:
		out.Key = KeyDelete
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyHome:
		out.Key = KeyHome
	case tcell.KeyEnd:
		out.Key = KeyEnd
	case tcell.KeyPgUp:
		out.Key = KeyPageUp
	case tcell.KeyPgDn:
		out.Key = KeyPageDown
	default:
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			out.Key = KeyRune
			out.Rune = rune('a' + k - tcell.KeyCtrlA)
			out.Mod |= ModCtrl
		} else {
			// Unknown sequences degrade to an ignorable event.
			out.Key = KeyNone
		}
	}
	return out
}

func translateMods(m tcell.ModMask) ModMask {
	var out ModMask
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	return out
}

func toTcellStyle(s core.Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(toTcellColor(s.Foreground)).
		Background(toTcellColor(s.Background))
	if s.Attributes.Has(core.AttrBold) {
		st = st.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		st = st.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		st = st.Reverse(true)
	}
	return st
}

func toTcellColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
