package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"promodeck/internal/debounce"
	"promodeck/internal/eventbus"
)

// DefaultReloadDelay batches the bursts of events editors produce on save
const DefaultReloadDelay = 250 * time.Millisecond

// Watcher reloads the catalog when its file (or any catalog file in its
// directory) changes on disk and publishes a CatalogReloadedEvent.
type Watcher struct {
	mu        sync.Mutex
	watcher   *fsnotify.Watcher
	path      string // catalog file or directory
	isDir     bool
	store     Store
	bus       eventbus.EventBus
	logger    *zap.Logger
	debouncer *debounce.Debouncer
	stopCh    chan struct{}
	doneCh    chan struct{}
	running   bool
	closed    bool
	reloads   int
}

// NewWatcher creates a watcher for path. It does nothing until Start.
func NewWatcher(path string, isDir bool, store Store, bus eventbus.EventBus, logger *zap.Logger, delay time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	return &Watcher{
		watcher:   fw,
		path:      filepath.Clean(path),
		isDir:     isDir,
		store:     store,
		bus:       bus,
		logger:    logger.Named("watcher"),
		debouncer: debounce.New(delay),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking; events are handled on a goroutine
// that exits when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return errors.New("watcher already stopped")
	}
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory so atomic saves (write temp file, rename) are seen
	dir := w.path
	if !w.isDir {
		dir = filepath.Dir(w.path)
	}
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.logger.Info("Watching catalog", zap.String("path", w.path))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher, waits for its goroutine to exit and releases the
// underlying file watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	w.debouncer.Stop()

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("Error closing file watcher", zap.Error(err))
	}
	w.logger.Debug("Catalog watcher stopped")
}

// Reloads returns how many reloads have been applied
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			w.debouncer.Stop()
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !w.relevant(event.Name) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return // chmod
	}
	w.logger.Debug("Catalog file changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
	w.debouncer.Trigger(func() {
		if err := w.Reload(); err != nil {
			w.logger.Warn("Catalog reload failed", zap.Error(err))
		}
	})
}

func (w *Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	if !w.isDir {
		return name == w.path
	}
	_, err := FormatFor(name)
	return err == nil
}

// Reload re-reads the catalog into the store. A catalog that cannot be read at
// all leaves the store untouched; one with some invalid records is applied.
func (w *Watcher) Reload() error {
	activities, err := Load(w.path)
	if err != nil && !errors.Is(err, ErrInvalidRecord) {
		if w.bus != nil {
			w.bus.Publish(eventbus.ErrorEvent{Message: "catalog reload failed", Err: err})
		}
		return err
	}
	if err != nil {
		w.logger.Warn("Skipped invalid catalog records", zap.Error(err))
	}

	w.store.Replace(activities)
	w.mu.Lock()
	w.reloads++
	w.mu.Unlock()

	w.logger.Info("Catalog reloaded", zap.String("path", w.path), zap.Int("count", len(activities)))
	if w.bus != nil {
		w.bus.Publish(eventbus.CatalogReloadedEvent{Source: w.path, Count: len(activities), Err: err})
	}
	return nil
}
