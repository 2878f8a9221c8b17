// Package backend abstracts the terminal surface the renderer draws to.
package backend

import "github.com/dshills/vellum/internal/render/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventQuit is delivered when the backend is shutting down or a quit
	// has been posted; pollers must stop polling after seeing it.
	EventQuit
)

// Key identifies a non-character key. Character input, including control
// chords, arrives as KeyRune with the Rune and Mod fields set.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields.
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields.
	Width, Height int
}

// Backend defines the interface for terminal/display backends.
// Implementations handle the actual drawing and input decoding.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Fini releases backend resources and restores terminal state.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	// All cells set since the previous Show appear in one update.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostQuit wakes a blocked PollEvent with an EventQuit.
	PostQuit()

	// Beep produces an audible or visual bell.
	Beep()
}

// NullBackend is an in-memory backend for testing. It records cells and
// replays scripted events.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	showCount     int
	events        chan Event
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
	b.reset()
	return b
}

func (b *NullBackend) reset() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Fini() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// Cell returns the cell at the given position for test assertions.
func (b *NullBackend) Cell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// Line returns row y as a string for test assertions.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	return core.StringFromCells(b.cells[y])
}

func (b *NullBackend) Clear() {
	b.reset()
}

func (b *NullBackend) Show() {
	b.showCount++
}

// ShowCount returns how many times Show has been called.
func (b *NullBackend) ShowCount() int { return b.showCount }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// PostEvent queues a synthetic event. Events are dropped if the queue is
// full so tests can never deadlock here.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

func (b *NullBackend) PostQuit() {
	b.PostEvent(Event{Type: EventQuit})
}

func (b *NullBackend) Beep() {}

// Resize changes the backend dimensions and queues a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.reset()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
