package level

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/u1krsh/GenesisEngine/worker"
)

// Watcher watches a directory of level files and re-parses them off the
// caller's goroutine whenever they change. Reloads that produce the same
// checksum as the last seen version are dropped.
type Watcher struct {
	log *logrus.Logger

	fw      *fsnotify.Watcher
	updates chan *Level

	mu   sync.Mutex
	sums map[string]uint64

	closeOnce sync.Once
	done      chan struct{}
}

// Watch starts watching dir for level file changes.
func Watch(log *logrus.Logger, dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		log:     log,
		fw:      fw,
		updates: make(chan *Level, 16),
		sums:    make(map[string]uint64),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates delivers freshly parsed levels. The channel is buffered; if the
// consumer falls behind, further updates are dropped rather than blocking
// the watch loop.
func (w *Watcher) Updates() <-chan *Level {
	return w.updates
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if !isLevelFile(ev.Name) {
				continue
			}
			path := ev.Name
			worker.Submit(func() {
				w.reload(path)
			})
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Errorf("level watcher: %v", err)
		}
	}
}

func (w *Watcher) reload(path string) {
	l, err := Load(path)
	if err != nil {
		w.log.Warnf("level watcher: unable to reload %s: %v", filepath.Base(path), err)
		return
	}

	w.mu.Lock()
	if w.sums[path] == l.Checksum() {
		w.mu.Unlock()
		return
	}
	w.sums[path] = l.Checksum()
	w.mu.Unlock()

	select {
	case w.updates <- l:
	default:
		w.log.Warnf("level watcher: dropping reload of %s, update queue full", l.Name)
	}
}

func isLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
