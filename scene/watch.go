package scene

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/projection/logging"
)

// Watcher reloads a scene file when it changes on disk. Editors typically
// rewrite files with several rapid events, so changes are debounced.
type Watcher struct {
	watcher    *fsnotify.Watcher
	path       string
	prefix     string
	debounceMs int
	lastChange time.Time
	mu         sync.Mutex
	logger     *logrus.Entry

	// onReload receives the freshly built store, or the load error when the
	// file is momentarily unparseable (e.g. mid-save).
	onReload func(*Store, error)
}

// NewWatcher creates a watcher for a scene file. The debounceMs parameter
// controls how long to wait before processing rapid changes.
func NewWatcher(path, prefix string, debounceMs int, onReload func(*Store, error)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the containing directory: many editors replace the file on
	// save, which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	if debounceMs <= 0 {
		debounceMs = 100
	}

	return &Watcher{
		watcher:    watcher,
		path:       path,
		prefix:     prefix,
		debounceMs: debounceMs,
		logger:     logging.NewLogger("scene-watcher"),
		onReload:   onReload,
	}, nil
}

// Start begins watching for scene changes. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if filepath.Clean(event.Name) == filepath.Clean(w.path) {
					w.handleChange()
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("Scene watcher error")
		case <-ctx.Done():
			return
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *Watcher) Stop() {
	w.watcher.Close()
}

func (w *Watcher) handleChange() {
	w.mu.Lock()
	now := time.Now()
	if now.Sub(w.lastChange) < time.Duration(w.debounceMs)*time.Millisecond {
		w.mu.Unlock()
		return
	}
	w.lastChange = now
	w.mu.Unlock()

	w.logger.Infof("Scene file changed, reloading: %s", w.path)
	store, err := w.reload()
	if err != nil {
		w.logger.WithError(err).Warn("Failed to reload scene")
	}
	if w.onReload != nil {
		w.onReload(store, err)
	}
}

func (w *Watcher) reload() (*Store, error) {
	doc, err := LoadFile(w.path)
	if err != nil {
		return nil, err
	}
	return doc.Build(w.prefix)
}
