// internal/core/state/reload.go
package state

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/hateftavakkoli/MongooseIM/internal/core/config"
)

// Reloader watches the configuration document and swaps the store on
// successful recompiles. A document that compiles with errors is
// logged and discarded; the previous state stays live.
type Reloader struct {
	path  string
	store *Store
}

// NewReloader returns a reloader for the document at path.
func NewReloader(path string, store *Store) *Reloader {
	return &Reloader{path: path, store: store}
}

// Run watches until ctx is cancelled. The watch is on the directory,
// not the file: editors and config-management tools replace the file
// by rename, which would silently detach a file-level watch.
func (r *Reloader) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(r.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(r.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			r.reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("configuration watcher error", "err", err)
		}
	}
}

func (r *Reloader) reload() {
	res, err := config.Load(r.path)
	if err != nil {
		slog.Error("reload rejected, keeping previous configuration", "path", r.path, "err", err)
		return
	}
	r.store.Replace(Assemble(res))
	slog.Info("configuration reloaded", "path", r.path, "tenants", len(res.Tenants))
}
