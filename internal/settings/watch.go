package settings

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the theme whenever the settings file changes on disk and
// passes it to onChange. It watches the parent directory so that editors
// replacing the file are seen. Watch returns once the watcher is running;
// the watcher stops when ctx is done.
func (s *Store) Watch(ctx context.Context, onChange func(Theme)) error {
	if s.path == "" {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create settings watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch settings directory %q: %w", dir, err)
	}

	slog.Debug("Watching settings file", "path", s.path)

	go s.watch(ctx, watcher, onChange)
	return nil
}

func (s *Store) watch(ctx context.Context, watcher *fsnotify.Watcher, onChange func(Theme)) {
	defer watcher.Close()

	target := filepath.Clean(s.path)
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

			data, err := os.ReadFile(s.path)
			if err != nil {
				slog.Warn("Failed to reload settings", "path", s.path, "error", err)
				continue
			}
			// a writer that truncates first produces an empty file before the content
			if len(bytes.TrimSpace(data)) == 0 {
				continue
			}

			theme, err := s.decode(data)
			if err != nil {
				slog.Warn("Failed to reload settings", "path", s.path, "error", err)
				continue
			}
			slog.Debug("Reloaded settings", "path", s.path, "theme", theme)
			onChange(theme)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Settings watcher error", "error", err)
		}
	}
}
