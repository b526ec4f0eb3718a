package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the sheet at path whenever it changes and hands the new sheet
// to onChange, until ctx is cancelled. Sheets that fail to load are logged and
// skipped.
//
// The parent directory is watched rather than the file: an atomic save renames
// a new inode over path, which would silently drop a watch held on the file.
func Watch(ctx context.Context, path string, onChange func(*Sheet)) error {
	target := filepath.Clean(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := Load(target); err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	slog.Info("config: watching sheet", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			reload(target, onChange)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}

func reload(path string, onChange func(*Sheet)) {
	s, err := Load(path)
	if err != nil {
		slog.Error("config: reload failed, keeping previous sheet", "path", path, "err", err)
		return
	}
	slog.Debug("config: sheet reloaded", "path", path)
	onChange(s)
}
