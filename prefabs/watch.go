package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// ChangeKind says what a changed file feeds.
type ChangeKind int

const (
	// ChangePrefab is an actor or camera spec; it is read on the next spawn.
	ChangePrefab ChangeKind = iota + 1
	// ChangeTuning is tuning.yaml; the running state has to reload it.
	ChangeTuning
	// ChangeScript is a tengo alert script; compiled copies are stale.
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangePrefab:
		return "prefab"
	case ChangeTuning:
		return "tuning"
	case ChangeScript:
		return "script"
	}
	return "unknown"
}

type Change struct {
	Path string
	Kind ChangeKind
}

// Classify maps a path to the kind of data it holds. ok is false for
// files the game does not read.
func Classify(path string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tengo":
		return ChangeScript, true
	case ".yaml", ".yml":
		if strings.EqualFold(filepath.Base(path), "tuning.yaml") {
			return ChangeTuning, true
		}
		return ChangePrefab, true
	}
	return 0, false
}

// Watcher reports prefab, tuning and script files that changed on disk.
// Bursts of events for one file within debounce collapse into one Change.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs; with no dirs it watches the prefab directory
// and its scripts.
func NewWatcher(dirs ...string) (*Watcher, error) {
	if len(dirs) == 0 {
		dirs = []string{Dir, filepath.Join(Dir, "scripts")}
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run owns Events and Errors and closes them when it returns, so a send
// can never race Close.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			kind, ok := Classify(ev.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if at, ok := seen[ev.Name]; ok && now.Sub(at) < debounce {
				continue
			}
			seen[ev.Name] = now

			select {
			case w.Events <- Change{Path: ev.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
