package schema

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/signin/internal/form"
	"github.com/nfrund/signin/internal/storage"
)

// Live is a Validator whose schema can be swapped at runtime.
type Live struct {
	current atomic.Pointer[Schema]
}

// NewLive returns a Live validator that starts with s.
func NewLive(s *Schema) *Live {
	l := &Live{}
	l.current.Store(s)
	return l
}

// Schema returns the schema currently in effect.
func (l *Live) Schema() *Schema {
	return l.current.Load()
}

// Swap replaces the schema in effect.
func (l *Live) Swap(s *Schema) {
	l.current.Store(s)
}

// Validate implements form.Validator.
func (l *Live) Validate(ctx context.Context, values form.Values) form.Errors {
	return l.current.Load().Validate(ctx, values)
}

// Watch reloads path into l whenever the file is written or recreated. It
// returns once the watcher is running; the watcher stops when ctx is done.
// A document that fails to compile is logged and the previous schema kept.
func (l *Live) Watch(ctx context.Context, store storage.Reader, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create schema watcher: %w", err)
	}
	// Editors often replace files by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	go l.watch(ctx, watcher, store, path)
	slog.Debug("Watching schema file", "path", path)
	return nil
}

func (l *Live) watch(ctx context.Context, watcher *fsnotify.Watcher, store storage.Reader, path string) {
	defer watcher.Close()
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s, err := LoadFile(ctx, store, path)
			if err != nil {
				slog.Error("Failed to reload schema, keeping previous", "path", path, "error", err)
				continue
			}
			l.Swap(s)
			slog.Info("Reloaded schema", "path", path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Schema watcher error", "error", err)
		}
	}
}
