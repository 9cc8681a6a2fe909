// Package watch re-runs an action when package manifests change.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/zjrosen/pydev/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem events on a set of manifest files and
// invokes OnChange after each quiet period. Editors produce bursts of
// chmod/rename/write events per save; the debounce collapses a burst into
// one reinstall.
type Watcher struct {
	// Paths are the files (or their directories) to watch.
	Paths []string

	// Debounce is the quiet period before OnChange fires.
	Debounce time.Duration

	// OnChange runs after the debounce window. Errors are reported by the
	// callback itself; watching continues regardless.
	OnChange func(ctx context.Context)
}

// Run watches until ctx is cancelled. The fsnotify watcher is attached to
// the manifests' directories, so a manifest that is replaced by rename
// (the common editor save strategy) keeps being watched.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fsw.Close() }()

	watched := make(map[string]bool, len(w.Paths))
	for _, path := range w.Paths {
		watched[path] = true
	}
	dirs := make(map[string]bool)
	for _, path := range w.Paths {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fsw.Add(dir); err != nil {
			return err
		}
		log.Debug(log.CatWatch, "watching", "dir", dir)
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] {
				continue
			}
			log.Debug(log.CatWatch, "manifest event", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.Debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.ErrorErr(log.CatWatch, "watch error", err)

		case <-timerC:
			timer = nil
			timerC = nil
			w.OnChange(ctx)
		}
	}
}
