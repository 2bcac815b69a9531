package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog file at path whenever it is written and passes
// each valid Set to onLoad. Failed reloads go to onErr and the caller keeps
// its previous Set. A reload with no games at all is treated as a failure,
// since editors that truncate before writing fire an event on the empty file.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onLoad func(Set), onErr func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch catalog: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file instead of writing it, so watch the directory.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch catalog %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			set, err := LoadFile(target)
			if err != nil {
				onErr(err)
				continue
			}
			if set.Hot.Len() == 0 && set.Popular.Len() == 0 {
				onErr(fmt.Errorf("reload %s: %w", target, ErrEmptyCatalog))
				continue
			}
			onLoad(set)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onErr(err)
		}
	}
}
