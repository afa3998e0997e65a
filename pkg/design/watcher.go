package design

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces bursts of editor writes into one reload.
const debounceDelay = 100 * time.Millisecond

// Watcher invalidates cached design contexts when their configuration files
// change on disk.
type Watcher struct {
	loader   *Loader
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	onChange func(path string)

	mu      sync.Mutex
	watched map[string]bool // config files by resolved path
	timers  map[string]*time.Timer
}

// NewWatcher creates a watcher bound to loader. onChange, when non-nil, is
// called after a configuration file was invalidated.
func NewWatcher(loader *Loader, logger *slog.Logger, onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		loader:   loader,
		watcher:  fw,
		logger:   logger,
		onChange: onChange,
		watched:  make(map[string]bool),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Add starts watching a configuration file. The parent directory is watched
// so that atomic saves (write to temp, rename) are observed.
func (w *Watcher) Add(configPath string) error {
	key := resolvePath(configPath)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watched[key] {
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(key)); err != nil {
		return fmt.Errorf("watch %s: %w", key, err)
	}
	w.watched[key] = true
	return nil
}

// Run processes file events until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("design config watcher error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	key := resolvePath(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watched[key] {
		return
	}
	if t, ok := w.timers[key]; ok {
		t.Stop()
	}
	w.timers[key] = time.AfterFunc(debounceDelay, func() {
		w.loader.Invalidate(key)
		w.logger.Info("design config changed", slog.String("path", key))
		if w.onChange != nil {
			w.onChange(key)
		}
	})
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	for _, t := range w.timers {
		t.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
