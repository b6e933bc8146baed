package execution

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher triggers a callback when python sources under a watched root
// change. Events are debounced so a burst of editor writes produces a
// single re-run.
type Watcher struct {
	fsw      *fsnotify.Watcher
	skipDirs map[string]bool
	debounce time.Duration
	onChange func()

	timerMu sync.Mutex
	timer   *time.Timer

	done chan struct{}
}

// NewWatcher creates a Watcher calling onChange after debounce of quiet time.
func NewWatcher(skipDirs []string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, os.ErrInvalid
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	skipMap := make(map[string]bool, len(skipDirs))
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}

	return &Watcher{
		fsw:      fsw,
		skipDirs: skipMap,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Watch registers root and all its non-ignored subdirectories and starts the
// event loop. Directories created while watching are picked up.
func (w *Watcher) Watch(root string) error {
	if err := w.addRecursive(root); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.done)
	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || w.skipDirs[name]) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal for a re-run loop; the next
			// explicit run still sees the real tree.
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			name := filepath.Base(event.Name)
			if !strings.HasPrefix(name, ".") && !w.skipDirs[name] {
				_ = w.addRecursive(event.Name)
			}
			return
		}
	}

	if !strings.HasSuffix(event.Name, ".py") {
		return
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.schedule()
}

func (w *Watcher) schedule() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.onChange)
		return
	}
	w.timer.Reset(w.debounce)
}
