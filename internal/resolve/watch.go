package resolve

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates the resolver cache whenever a workspace file changes,
// so a cached repo scan never outlives an edit to the state files. It blocks
// until ctx is cancelled; run it in its own goroutine.
func (r *Resolver) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the root plus the directories the sync sources read from.
	// fsnotify is not recursive; these cover every file the resolver serves.
	dirs := []string{"", "state", "shared-context", "content", "agents"}
	for _, dir := range dirs {
		if err := watcher.Add(r.ws.Abs(dir)); err != nil {
			r.log.Debug("watch skipped", "dir", dir, "error", err)
		}
	}

	r.log.Info("workspace watcher started", "root", r.ws.Root())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				r.Invalidate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("workspace watcher error", "error", err)
		}
	}
}
