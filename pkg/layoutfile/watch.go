package layoutfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/grindlemire/go-dpad/internal/debug"
)

// DefaultDebounce is the quiet period used when Watch is given a
// non-positive debounce.
const DefaultDebounce = 150 * time.Millisecond

// Watch reloads the layout at path whenever it changes and hands the result
// to fn. A burst of writes inside the debounce window produces a single
// reload. fn runs on the watcher goroutine; hosts forward the layout to
// their own loop before touching a controller.
//
// The parent directory is watched rather than the file so that editors
// which replace the file on save keep being observed. Watch blocks until
// ctx is cancelled and returns nil in that case.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func(*Layout, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(abs)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	debug.Log("layoutfile.Watch: watching %s (debounce=%s)", abs, debounce)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debug.Log("layoutfile.Watch: %s", ev)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			l, err := Load(abs)
			fn(l, err)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watch %s: %w", abs, err))
		}
	}
}
