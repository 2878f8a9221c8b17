package app

import (
	"time"

	"github.com/dshills/vellum/internal/config"
	"github.com/dshills/vellum/internal/render/backend"
)

const (
	eventBufferSize = 100
	expiryInterval  = 500 * time.Millisecond
)

// Run initializes the terminal and processes events until a quit is
// accepted. A clean exit returns ErrQuit so callers can tell it apart
// from a startup failure.
func (a *App) Run() error {
	if a.running {
		return ErrAlreadyRunning
	}
	a.running = true
	defer func() { a.running = false }()

	if err := a.backend.Init(); err != nil {
		return WrapError(err, "initializing terminal")
	}
	defer a.backend.Fini()

	a.quit = false
	a.events = make(chan backend.Event, eventBufferSize)
	a.stopPump = make(chan struct{})
	go a.pump()

	// the ticker only exists to repaint when a message times out
	ticker := time.NewTicker(expiryInterval)
	defer ticker.Stop()

	var watchCh <-chan config.ChangeEvent
	if a.watcher != nil {
		watchCh = a.watcher.Events()
	}

	a.logger.Info("editor started")
	a.refresh()

	for !a.quit {
		select {
		case ev, ok := <-a.events:
			if !ok {
				a.quit = true
				continue
			}
			a.handleEvent(ev)
			a.refresh()
		case _, ok := <-watchCh:
			if !ok {
				watchCh = nil
				continue
			}
			a.reloadConfig(a.watcher.Path())
			a.refresh()
		case <-ticker.C:
			if a.expireMessage() {
				a.refresh()
			}
		}
	}

	a.shutdown()
	return ErrQuit
}

// Stop requests a clean exit. It is the one method safe to call from
// another goroutine while Run is active.
func (a *App) Stop() {
	a.backend.PostQuit()
}

// pump forwards terminal events to the loop until a quit event
// arrives or the loop stops listening. Key and resize events are
// dropped when the loop falls behind; quit events never are.
func (a *App) pump() {
	defer close(a.events)
	for {
		ev := a.backend.PollEvent()
		if ev.Type == backend.EventQuit {
			select {
			case a.events <- ev:
			case <-a.stopPump:
			}
			return
		}
		select {
		case a.events <- ev:
		case <-a.stopPump:
			return
		default:
			// loop is behind, drop
		}
	}
}

// shutdown flushes editor state before the terminal goes back to the
// shell.
func (a *App) shutdown() {
	close(a.stopPump)

	a.recordPosition()
	if err := a.store.Save(); err != nil {
		a.logger.WithComponent("state").Warn("saving positions: %v", err)
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.logger.WithComponent("config").Warn("closing watcher: %v", err)
		}
	}
	if err := a.engine.Close(); err != nil {
		a.logger.WithComponent("script").Warn("closing scripts: %v", err)
	}
	a.logger.Info("editor stopped")
}
