package assets

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/particle-exhibits/internal/logger"
)

// Watcher reports writes to a fixed set of asset files.
// Directories are watched rather than files so editors that replace a file
// on save are still seen.
type Watcher struct {
	fs      *fsnotify.Watcher
	tracked map[string]string // cleaned path -> path as given
	changes chan string
	done    chan struct{}
	log     *zap.Logger
}

// NewWatcher starts watching paths.
func NewWatcher(paths []string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		fs:      fs,
		tracked: make(map[string]string, len(paths)),
		changes: make(chan string, 16),
		done:    make(chan struct{}),
		log:     logger.Named("watcher"),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		clean := filepath.Clean(p)
		w.tracked[clean] = p
		dirs[filepath.Dir(clean)] = true
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	go w.run()
	return w, nil
}

// Changes delivers the path of each tracked file that was written.
// Bursts may be coalesced; a full buffer drops events.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			path, tracked := w.tracked[filepath.Clean(ev.Name)]
			if !tracked {
				continue
			}
			select {
			case w.changes <- path:
			default:
				w.log.Debug("change dropped, consumer behind", zap.String("path", path))
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
