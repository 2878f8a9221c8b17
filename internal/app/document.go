package app

import (
	"errors"
	"time"

	"github.com/dshills/vellum/internal/config"
	"github.com/dshills/vellum/internal/editor"
	"github.com/dshills/vellum/internal/render"
	"github.com/dshills/vellum/internal/state"
)

// rootCause unwraps to the innermost error for terse status messages.
func rootCause(err error) error {
	for {
		u := errors.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
}

// OpenFile loads a path into the buffer. A missing file opens as an
// empty document that will be created on first save. On a read
// failure the current buffer stays as it was.
func (a *App) OpenFile(path string) error {
	doc, err := ReadDocument(path, a.cfg.TabStop)
	if err != nil {
		a.logger.WithComponent("file").Error("open %s: %v", path, err)
		a.setMessage(render.ErrorMessage(time.Now(), "Can't open %s: %v", path, rootCause(err)))
		return err
	}

	a.doc = doc
	a.filename = path
	a.cursor = editor.Cursor{}
	a.applyProfile()

	if pos, ok := a.store.Position(path); ok {
		a.cursor = editor.Cursor{Row: pos.Row, Col: pos.Col}
		a.cursor.Clamp(a.doc)
	}

	if err := a.engine.FireOpen(path); err != nil {
		a.logger.WithComponent("script").Error("on_open hook: %v", err)
		a.setMessage(render.ErrorMessage(time.Now(), "script error: %v", err))
	}
	return nil
}

// save writes the buffer to its file, prompting for a name first when
// the buffer has none.
func (a *App) save() {
	if a.filename != "" {
		a.writeFile()
		return
	}
	a.startPrompt("Save as: %s (ESC to cancel)", nil, func(result PromptResult, text string) {
		if result != PromptAccepted {
			a.setMessage(render.ErrorMessage(time.Now(), "Save aborted"))
			return
		}
		a.filename = text
		a.applyProfile()
		a.writeFile()
	})
}

func (a *App) writeFile() {
	n, err := WriteDocument(a.filename, a.doc)
	if err != nil {
		a.logger.WithComponent("file").Error("save %s: %v", a.filename, err)
		a.setMessage(render.ErrorMessage(time.Now(), "Can't save! I/O error: %v", rootCause(err)))
		return
	}
	a.doc.MarkClean()
	a.setMessage(render.SavedMessage(time.Now(), n))
	a.recordPosition()

	if err := a.engine.FireSave(a.filename); err != nil {
		a.logger.WithComponent("script").Error("on_save hook: %v", err)
		a.setMessage(render.ErrorMessage(time.Now(), "script error: %v", err))
	}
}

// recordPosition remembers the cursor for the current file.
func (a *App) recordPosition() {
	if a.filename == "" {
		return
	}
	pos := state.Position{Row: a.cursor.Row, Col: a.cursor.Col}
	if err := a.store.SetPosition(a.filename, pos); err != nil {
		a.logger.WithComponent("state").Warn("recording position: %v", err)
	}
}

// reloadConfig reapplies settings after the watched file changes. A
// broken file keeps the running configuration.
func (a *App) reloadConfig(path string) {
	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		a.logger.WithComponent("config").Error("reload: %v", err)
		a.setMessage(render.ErrorMessage(time.Now(), "config reload failed: %v", err))
		return
	}
	a.applyConfig(cfg)
	a.logger.WithComponent("config").Info("reloaded %s", path)
	a.setMessage(render.InfoMessage(time.Now(), "Config reloaded"))
}
