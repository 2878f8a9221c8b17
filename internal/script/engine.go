// Package script embeds a Lua interpreter for user extension.
//
// The engine owns one gopher-lua state and exposes a `vellum` module to
// scripts: status messages, line access, text insertion, option access,
// key bindings, and save/open hooks. All execution is synchronous and
// single-threaded; the event loop is the only caller. Script failures
// surface as errors for the caller to show, never as crashes.
package script

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"
)

// ErrEngineClosed indicates use of an engine after Close.
var ErrEngineClosed = errors.New("script engine closed")

// Host is the editor surface exposed to scripts.
type Host interface {
	// StatusMessage shows msg in the message bar.
	StatusMessage(msg string)

	// Filename returns the current file name, empty when unnamed.
	Filename() string

	// LineCount returns the number of rows in the document.
	LineCount() int

	// Line returns the raw text of row n (0-based). ok is false when n
	// is out of range.
	Line(n int) (text string, ok bool)

	// InsertText inserts text at the cursor.
	InsertText(text string)

	// Bind routes a key chord to the script callback registered under id.
	Bind(chord, id string) error

	// Option returns the named setting. ok is false when unknown.
	Option(name string) (value any, ok bool)

	// SetOption applies the named setting.
	SetOption(name string, value any) error
}

// Engine runs user Lua against a Host.
type Engine struct {
	L    *lua.LState
	host Host

	// callbacks holds bound chord and hook functions keyed by id.
	callbacks map[string]*lua.LFunction

	saveHooks []string
	openHooks []string

	closed bool
}

// New creates an engine with the safe libraries and the vellum module
// installed.
func New(host Host) *Engine {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // We'll open selectively
	})
	openSafeLibraries(L)

	e := &Engine{
		L:         L,
		host:      host,
		callbacks: make(map[string]*lua.LFunction),
	}
	e.installModule()
	return e
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Note: These are intentionally NOT opened:
	// - io (file system access)
	// - os (system calls, execute)
	// - debug (can bypass sandbox)
	// - package (can load arbitrary modules)
}

// installModule publishes the vellum table.
func (e *Engine) installModule() {
	mod := e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"status":   e.luaStatus,
		"line":     e.luaLine,
		"lines":    e.luaLines,
		"insert":   e.luaInsert,
		"filename": e.luaFilename,
		"option":   e.luaOption,
		"bind":     e.luaBind,
		"on_save":  e.luaOnSave,
		"on_open":  e.luaOnOpen,
	})
	e.L.SetGlobal("vellum", mod)
}

func (e *Engine) luaStatus(L *lua.LState) int {
	e.host.StatusMessage(L.CheckString(1))
	return 0
}

// luaLine returns line n, 1-based the Lua way, or nil out of range.
func (e *Engine) luaLine(L *lua.LState) int {
	n := L.CheckInt(1)
	text, ok := e.host.Line(n - 1)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}

func (e *Engine) luaLines(L *lua.LState) int {
	L.Push(lua.LNumber(e.host.LineCount()))
	return 1
}

func (e *Engine) luaInsert(L *lua.LState) int {
	e.host.InsertText(L.CheckString(1))
	return 0
}

func (e *Engine) luaFilename(L *lua.LState) int {
	L.Push(lua.LString(e.host.Filename()))
	return 1
}

// luaOption reads an option with one argument, writes it with two.
func (e *Engine) luaOption(L *lua.LState) int {
	name := L.CheckString(1)
	if L.GetTop() >= 2 {
		if err := e.host.SetOption(name, ToGo(L.Get(2))); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}
	v, ok := e.host.Option(name)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(ToLua(L, v))
	return 1
}

func (e *Engine) luaBind(L *lua.LState) int {
	chord := L.CheckString(1)
	fn := L.CheckFunction(2)

	id := e.register(fn)
	if err := e.host.Bind(chord, id); err != nil {
		delete(e.callbacks, id)
		L.RaiseError("%s", err.Error())
	}
	return 0
}

func (e *Engine) luaOnSave(L *lua.LState) int {
	e.saveHooks = append(e.saveHooks, e.register(L.CheckFunction(1)))
	return 0
}

func (e *Engine) luaOnOpen(L *lua.LState) int {
	e.openHooks = append(e.openHooks, e.register(L.CheckFunction(1)))
	return 0
}

// register stores a callback and returns its id.
func (e *Engine) register(fn *lua.LFunction) string {
	id := uuid.NewString()
	e.callbacks[id] = fn
	return id
}

// LoadFile runs a script file. A missing or empty path is not an error.
func (e *Engine) LoadFile(path string) error {
	if e.closed {
		return ErrEngineClosed
	}
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return e.doWithRecovery(func() error {
		return e.L.DoFile(path)
	})
}

// Eval runs a chunk of Lua source.
func (e *Engine) Eval(code string) error {
	if e.closed {
		return ErrEngineClosed
	}
	return e.doWithRecovery(func() error {
		return e.L.DoString(code)
	})
}

// RunBinding invokes a registered callback by id.
func (e *Engine) RunBinding(id string, args ...any) error {
	if e.closed {
		return ErrEngineClosed
	}
	fn, ok := e.callbacks[id]
	if !ok {
		return fmt.Errorf("unknown script callback %s", id)
	}
	return e.doWithRecovery(func() error {
		e.L.Push(fn)
		for _, a := range args {
			e.L.Push(ToLua(e.L, a))
		}
		return e.L.PCall(len(args), 0, nil)
	})
}

// FireSave runs the save hooks with the saved file's name.
func (e *Engine) FireSave(filename string) error {
	return e.fire(e.saveHooks, filename)
}

// FireOpen runs the open hooks with the opened file's name.
func (e *Engine) FireOpen(filename string) error {
	return e.fire(e.openHooks, filename)
}

// fire runs every hook even when one fails, reporting the first error.
func (e *Engine) fire(ids []string, args ...any) error {
	var firstErr error
	for _, id := range ids {
		if err := e.RunBinding(id, args...); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// doWithRecovery executes a function with panic recovery.
func (e *Engine) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the Lua state. After Close every method returns
// ErrEngineClosed.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.L.Close()
	e.closed = true
	return nil
}
