package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Handler receives the reloaded configuration after a file change.
type Handler func(Config)

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets how long to coalesce change bursts before reloading.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithWatchLogger sets the watcher's logger.
func WithWatchLogger(log *zap.Logger) WatchOption {
	return func(w *Watcher) { w.log = log }
}

// Watcher reloads the configuration file when it changes on disk.
// Editors and sync tools write files in bursts (create, write, rename), so
// reloads are debounced; a reload that fails to parse is logged and
// dropped, keeping the last good configuration in effect.
type Watcher struct {
	path     string
	handler  Handler
	debounce time.Duration
	log      *zap.Logger

	fsw  *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// Watch starts watching path and delivering reloaded configs to handler.
// The file's directory is watched so the file may not exist yet.
func Watch(path string, handler Handler, opts ...WatchOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:     path,
		handler:  handler,
		debounce: 100 * time.Millisecond,
		log:      zap.NewNop(),
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
		w.fsw.Close()
	})
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watch error", zap.Error(err))
		case <-fire:
			timer, fire = nil, nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload failed; keeping previous",
			zap.String("path", w.path),
			zap.Error(err))
		return
	}
	w.log.Debug("config reloaded", zap.String("path", w.path))
	w.handler(cfg)
}
