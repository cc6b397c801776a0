// Package watcher reports changes to a directory, coalescing bursts of
// filesystem events into a single callback.
package watcher

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

type Options struct {
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watcher calls OnChange once per burst of changes under a directory.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange func()
	debounce time.Duration
	log      *slog.Logger
	done     chan struct{}
	wg       sync.WaitGroup

	mutex  sync.Mutex
	timer  *time.Timer
	closed bool
}

// New starts watching dir. The directory itself is watched, not its subtree.
func New(dir string, onChange func(), options Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	debounce := options.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{
		watcher:  fsw,
		onChange: onChange,
		debounce: debounce,
		log:      logger,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.log.Debug("content changed", "path", event.Name, "op", event.Op.String())
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "error", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.closed {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
		return
	}
	w.timer.Reset(w.debounce)
}

func (w *Watcher) flush() {
	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return
	}
	w.timer = nil
	w.mutex.Unlock()

	w.onChange()
}

// Close stops the watcher. Pending callbacks are dropped.
func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}

	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mutex.Unlock()

	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
