package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/schemabench/swls/internal/log"
)

// rebuildQuiet is how long the watcher waits after the last file event
// before invoking the rebuild callback. Editors often emit bursts of
// create/write/rename events for a single save.
const rebuildQuiet = 200 * time.Millisecond

// Watcher observes the workspace root for schema file changes and invokes a
// callback once the file system has settled.
type Watcher struct {
	root     string
	globs    []string
	onChange func()

	fsw    *fsnotify.Watcher
	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewWatcher creates a watcher for the given root. onChange is called from
// the watcher goroutine after rebuildQuiet of quiet.
func NewWatcher(root string, globs []string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:     root,
		globs:    globs,
		onChange: onChange,
		fsw:      fsw,
	}

	// fsnotify watches are not recursive; register every directory under root
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, skip
		}
		if d.IsDir() {
			if addErr := fsw.Add(path); addErr != nil {
				log.Warn("Cannot watch %s: %v", path, addErr)
			}
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories need their own watch
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(event.Name); err != nil {
				log.Warn("Cannot watch %s: %v", event.Name, err)
			}
		}
	}

	if !w.matches(event.Name) {
		return
	}

	log.Debug("Schema file event: %s %s", event.Op, event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(rebuildQuiet, w.onChange)
}

func (w *Watcher) matches(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.globs {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Close stops the watcher. Pending rebuild timers are cancelled.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.fsw.Close()
}
