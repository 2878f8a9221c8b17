package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent reports that the watched configuration file changed.
type ChangeEvent struct {
	// Path is the absolute path of the configuration file.
	Path string

	// Time is when the change was observed.
	Time time.Time
}

// Watcher watches one configuration file for changes.
//
// fsnotify watches the file's directory rather than the file itself, so
// editors that replace the file with a rename keep producing events.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	path    string
	events  chan ChangeEvent
	closeCh chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// NewWatcher starts watching the configuration file at path. The file
// itself need not exist yet; its directory must.
func NewWatcher(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    absPath,
		events:  make(chan ChangeEvent, 8),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the change event channel. Events are dropped when the
// channel is full; a pending event already forces a reload.
func (w *Watcher) Events() <-chan ChangeEvent {
	return w.events
}

// Close stops the watcher and closes the event channel.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	close(w.events)
	return err
}

// processLoop filters fsnotify events down to the watched file.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.matches(fsEvent) {
				continue
			}
			select {
			case w.events <- ChangeEvent{Path: w.path, Time: time.Now()}:
			default:
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient here; keep going.
		}
	}
}

// matches reports whether the event concerns the watched file with an
// operation that warrants a reload. A rename over the file arrives as
// Create for its path.
func (w *Watcher) matches(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
		return false
	}
	name, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return name == w.path
}
