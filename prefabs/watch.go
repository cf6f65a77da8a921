package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/milk9111/pixel/logger"
)

// ReloadDebounce swallows editor save bursts on the same file.
const ReloadDebounce = 100 * time.Millisecond

// Change is a debounced edit of a tuning, script or level file.
type Change struct {
	Path string
	Kind ChangeKind
}

type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeScript
	ChangeLevel
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSpec:
		return "spec"
	case ChangeScript:
		return "script"
	case ChangeLevel:
		return "level"
	default:
		return "unknown"
	}
}

// Watcher reports edits under the watched directories. Consumers poll
// Pending once per frame so reloads land on a frame boundary.
type Watcher struct {
	watcher *fsnotify.Watcher
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once

	mu      sync.Mutex
	pending []Change
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// Pending drains the changes collected since the last call.
func (w *Watcher) Pending() []Change {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.pending
	w.pending = nil
	return out
}

func (w *Watcher) push(c Change) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.pending {
		if p.Path == c.Path {
			return
		}
	}
	w.pending = append(w.pending, c)
}

func (w *Watcher) run() {
	log := logger.For("prefabs")
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			kind, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < ReloadDebounce {
				continue
			}
			last[event.Name] = now
			log.WithField("file", event.Name).Infof("%s changed", kind)
			w.push(Change{Path: event.Name, Kind: kind})
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				log.WithError(err).Warn("watcher error dropped")
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ChangeSpec, true
	case ".tengo":
		return ChangeScript, true
	case ".json":
		return ChangeLevel, true
	}
	return 0, false
}
