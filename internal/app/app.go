package app

import (
	"time"

	"github.com/dshills/vellum/internal/config"
	"github.com/dshills/vellum/internal/editor"
	"github.com/dshills/vellum/internal/input/key"
	"github.com/dshills/vellum/internal/render"
	"github.com/dshills/vellum/internal/render/backend"
	"github.com/dshills/vellum/internal/render/viewport"
	"github.com/dshills/vellum/internal/script"
	"github.com/dshills/vellum/internal/search"
	"github.com/dshills/vellum/internal/state"
	"github.com/dshills/vellum/internal/syntax"
	"github.com/dshills/vellum/internal/theme"
)

// Version is the editor version shown in the welcome banner.
const Version = "0.1.0"

// reserved terminal rows below the text area (status bar and message row)
const chromeRows = 2

// Options configures a new application.
type Options struct {
	// Backend is the terminal surface. Required.
	Backend backend.Backend

	// Config supplies settings. Nil uses the defaults.
	Config *config.Config

	// ConfigPath enables live reload of the named file when non-empty.
	ConfigPath string

	// Logger receives diagnostics. Nil uses the package logger.
	Logger *Logger

	// Welcome overrides the banner shown on an empty unnamed buffer.
	Welcome string
}

// savedView remembers where the cursor and window were before an
// incremental search so Escape can put them back.
type savedView struct {
	cursor    editor.Cursor
	rowOffset int
	colOffset int
}

// promptDone runs once when a prompt accepts or cancels.
type promptDone func(result PromptResult, text string)

// App owns the editor state and the event loop. All mutation happens
// on the loop goroutine; Stop is the only method safe to call from
// another goroutine while Run is active.
type App struct {
	cfg    *config.Config
	logger *Logger

	backend  backend.Backend
	renderer *render.Renderer
	comp     *render.Compositor
	view     *viewport.Viewport

	doc      *editor.Document
	cursor   editor.Cursor
	filename string
	profiles []*syntax.Profile

	message      render.Message
	prompt       *Prompt
	onPromptDone promptDone

	keymap  map[string]string // chord -> built-in command
	scripts map[string]string // chord -> script callback id

	store   *state.Store
	engine  *script.Engine
	watcher *config.Watcher

	quitLeft    int
	quitPressed bool
	quit        bool

	running  bool
	events   chan backend.Event
	stopPump chan struct{}
}

// New builds an application around the given backend. The init script
// named by the configuration runs before New returns; script errors
// are reported in the message row rather than failing construction.
func New(opts Options) (*App, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = GetLogger()
	}
	welcome := opts.Welcome
	if welcome == "" {
		welcome = "Vellum editor -- version " + Version
	}

	a := &App{
		logger:   logger,
		backend:  opts.Backend,
		view:     viewport.New(1, 1),
		doc:      editor.NewDocument(),
		scripts:  make(map[string]string),
		message:  render.HelpMessage(time.Now()),
		stopPump: make(chan struct{}),
	}
	a.comp = render.NewCompositor(theme.Default(), welcome)
	a.renderer = render.NewRenderer(opts.Backend)
	a.applyConfig(cfg)

	statePath := cfg.StatePath
	if statePath == "" {
		statePath = state.DefaultPath()
	}
	a.store = state.Open(statePath)

	a.engine = script.New(a)
	if err := a.engine.LoadFile(cfg.ScriptPath); err != nil {
		a.logger.WithComponent("script").Error("init script: %v", err)
		a.setMessage(render.ErrorMessage(time.Now(), "script error: %v", err))
	}

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			a.logger.WithComponent("config").Warn("config watch disabled: %v", err)
		} else {
			a.watcher = w
		}
	}
	return a, nil
}

// applyConfig installs settings that take effect immediately: tab
// stop, theme, syntax profiles, and key bindings.
func (a *App) applyConfig(cfg *config.Config) {
	a.cfg = cfg
	a.quitLeft = cfg.QuitTimes
	a.doc.SetTabStop(cfg.TabStop)

	th := theme.Default()
	for _, err := range th.Apply(cfg.Theme) {
		a.logger.WithComponent("theme").Warn("%v", err)
	}
	a.comp.SetTheme(th)

	a.profiles = cfg.Profiles()
	a.applyProfile()

	a.keymap = defaultKeymap()
	for chord, cmd := range cfg.Keys {
		ev, err := key.Parse(chord)
		if err != nil {
			a.logger.WithComponent("config").Warn("binding %q: %v", chord, err)
			continue
		}
		a.keymap[ev.Chord()] = cmd
	}
}

// applyProfile re-detects the syntax profile from the current
// filename.
func (a *App) applyProfile() {
	a.doc.SetProfile(syntax.Detect(a.filename, a.profiles))
}

func (a *App) setMessage(m render.Message) {
	a.message = m
}

func (a *App) messageTimeout() time.Duration {
	return time.Duration(a.cfg.MessageTimeout) * time.Second
}

func (a *App) filetype() string {
	if p := a.doc.Profile(); p != nil {
		return p.Name
	}
	return ""
}

// resize fits the viewport to the terminal, keeping the chrome rows
// out of the text area.
func (a *App) resize(width, height int) {
	rows := height - chromeRows
	if rows < 1 {
		rows = 1
	}
	if width < 1 {
		width = 1
	}
	a.view.Resize(rows, width)
}

// refresh composes the current state into a frame and presents it.
func (a *App) refresh() {
	w, h := a.backend.Size()
	a.resize(w, h)

	now := time.Now()
	msg := a.message
	if a.prompt != nil {
		msg = render.PromptMessage(now, a.prompt.Render())
	}

	a.view.Recompute(a.cursor.Row, a.doc.DisplayColumn(a.cursor.Row, a.cursor.Col))

	scene := render.Scene{
		Doc:    a.doc,
		View:   a.view,
		Cursor: a.cursor,
		Status: render.StatusInfo{
			Filename:  a.filename,
			Rows:      a.doc.RowCount(),
			Dirty:     a.doc.Dirty() > 0,
			Filetype:  a.filetype(),
			CursorRow: a.cursor.Row,
		},
		Message:        msg,
		Now:            now,
		MessageTimeout: a.messageTimeout(),
	}
	a.renderer.Present(a.comp.Compose(scene))
}

// expireMessage clears a timed-out message and reports whether the
// message row changed.
func (a *App) expireMessage() bool {
	if a.prompt != nil {
		return false
	}
	if a.message.Kind == render.MessageNone {
		return false
	}
	if !a.message.Expired(time.Now(), a.messageTimeout()) {
		return false
	}
	a.message = render.Message{}
	return true
}

// startPrompt opens a prompt in the message row. Keys route to it
// until it accepts or cancels, at which point done runs once.
func (a *App) startPrompt(label string, cb PromptCallback, done promptDone) {
	a.prompt = NewPrompt(label, cb)
	a.onPromptDone = done
}

// search glue, set while a find prompt is open
type findState struct {
	session *search.Session
	saved   savedView
}

// startFind opens the incremental search prompt. Arrow keys move
// between matches, Enter keeps the current position, and Escape
// returns to where the search began.
func (a *App) startFind() {
	st := &findState{
		session: search.Begin(a.doc),
		saved: savedView{
			cursor:    a.cursor,
			rowOffset: a.view.RowOffset(),
			colOffset: a.view.ColOffset(),
		},
	}

	cb := func(text string, ev key.Event) {
		move := search.MoveNone
		switch ev.Key {
		case key.KeyRight, key.KeyDown:
			move = search.MoveNext
		case key.KeyLeft, key.KeyUp:
			move = search.MovePrev
		case key.KeyEnter, key.KeyEscape:
			// End restores the overlay once the prompt closes
			return
		}
		cur, found := st.session.Update(text, move)
		if found {
			a.cursor = cur
			// park the matched row at the top of the window
			a.view.SetOffsets(a.doc.RowCount(), a.view.ColOffset())
		}
	}

	a.startPrompt("Search: %s (Use ESC/Arrows/Enter)", cb, func(result PromptResult, text string) {
		st.session.End()
		if result == PromptCancelled {
			a.cursor = st.saved.cursor
			a.view.SetOffsets(st.saved.rowOffset, st.saved.colOffset)
		}
	})
}

// startEval opens a prompt that evaluates one line of Lua.
func (a *App) startEval() {
	a.startPrompt("Lua: %s (ESC to cancel)", nil, func(result PromptResult, text string) {
		if result != PromptAccepted {
			return
		}
		if err := a.engine.Eval(text); err != nil {
			a.logger.WithComponent("script").Error("eval: %v", err)
			a.setMessage(render.ErrorMessage(time.Now(), "script error: %v", err))
		}
	})
}

// requestQuit asks to leave. A dirty buffer demands repeated presses
// before the request goes through.
func (a *App) requestQuit() {
	a.quitPressed = true
	if a.doc.Dirty() > 0 && a.quitLeft > 0 {
		a.setMessage(render.QuitWarningMessage(time.Now(), a.quitLeft))
		a.quitLeft--
		return
	}
	a.quit = true
}
