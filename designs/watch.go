package designs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event reports an edit to the watched design or one of its curve scripts.
type Event struct {
	Path string
	// Script is true when a referenced curve script changed rather than
	// the design file itself.
	Script bool
}

// Watcher follows a single design file and the curve scripts it references,
// so a caller can rebuild the track exactly when one of its inputs changes.
// Edits to other designs or unreferenced scripts in the same directories
// are ignored.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Event
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once

	design string

	mu      sync.Mutex
	scripts map[string]bool
}

// WatchDesign watches the design named file under dir, plus dir/scripts
// when it exists. The watcher starts with no referenced scripts; call
// SetScripts after each (re)load of the design so script edits are matched
// against what it currently references.
func WatchDesign(dir, file string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}
	scriptsDir := filepath.Join(dir, "scripts")
	if info, err := os.Stat(scriptsDir); err == nil && info.IsDir() {
		if err := w.Add(scriptsDir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Event, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		design:  filepath.Base(file),
		scripts: map[string]bool{},
	}
	go watcher.run()
	return watcher, nil
}

// SetScripts replaces the set of curve scripts whose edits produce events.
// Names are the Script fields of the design's curves, in any of the path
// forms LoadScript accepts.
func (w *Watcher) SetScripts(names ...string) {
	scripts := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		scripts[filepath.Base(cleanScriptPath(name))] = true
	}

	w.mu.Lock()
	w.scripts = scripts
	w.mu.Unlock()
}

// Close stops watching. The Events and Errors channels are closed by the
// watch loop once it has wound down, so Close never races a pending send.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			ev, relevant := w.match(event.Name)
			if !relevant {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- ev:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// match decides whether a changed path is an input of the watched design.
func (w *Watcher) match(path string) (Event, bool) {
	base := filepath.Base(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if base == w.design {
			return Event{Path: path}, true
		}
	case ".tengo":
		w.mu.Lock()
		referenced := w.scripts[base]
		w.mu.Unlock()
		if referenced {
			return Event{Path: path, Script: true}, true
		}
	}
	return Event{}, false
}
