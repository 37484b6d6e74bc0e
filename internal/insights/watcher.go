package insights

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher keeps a catalog in sync with its directory.
type Watcher struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewWatcher returns a watcher for catalog.
func NewWatcher(catalog *Catalog, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{catalog: catalog, logger: logger}
}

// Start watches the catalog directory until ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(w.catalog.Dir()); err != nil {
		watcher.Close()
		return err
	}
	// Catch files created between the initial scan and Add.
	w.catalog.Refresh()

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				name := filepath.Base(evt.Name)
				if w.catalog.Known(name) {
					w.catalog.refreshOne(name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				w.logger.Warn("insight watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
