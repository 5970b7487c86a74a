package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/gigagent/internal/content"
)

// DefaultDebounce groups bursts of file events (editors often write a file
// several times) into one export.
const DefaultDebounce = 150 * time.Millisecond

// Watch re-exports the site whenever a file under dir changes, until ctx is
// cancelled. onExport is called after every export with its outcome. Watch
// does not export on start; callers run Export first.
func (e *Exporter) Watch(ctx context.Context, dir string, page content.Page, debounce time.Duration, onExport func(*Result, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(p); err != nil {
				return fmt.Errorf("failed to watch %s: %w", p, err)
			}
			slog.Debug("Added directory to watcher", "path", p)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Watching static assets", "dir", dir)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Static asset watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				// New subdirectories need their own watch.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						slog.Warn("Failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			slog.Debug("Static asset changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File system watcher error", "error", err)

		case <-timer.C:
			res, err := e.Export(ctx, page)
			if err != nil {
				slog.Error("Re-export failed", "error", err)
			}
			if onExport != nil {
				onExport(res, err)
			}
		}
	}
}
