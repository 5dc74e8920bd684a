package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ryan-jan/hclfmt"
)

const watchDebounce = 100 * time.Millisecond

// runWatch formats paths once, then watches every directory reachable
// from them and reformats files in place as they're written, until
// interrupted. It never returns on its own.
func runWatch(paths []string, workers int) error {
	if _, err := runFormat(paths, workers); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addWatchRecursive(watcher, path); err != nil {
			return err
		}
	}

	fmt.Fprintln(os.Stderr, "watching for changes, press ctrl-c to stop")

	debounced := newDebouncer(watchDebounce)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if isIgnoredFile(name) || !hasSupportedExt(name) {
				continue
			}
			path := event.Name
			debounced.trigger(path, func() { formatWatchedFile(path) })
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "error", err)
		}
	}
}

// formatWatchedFile reformats a single file once its run of watch
// events has settled past the debounce window.
func formatWatchedFile(path string) {
	var original []byte
	if config.Diff {
		original, _ = os.ReadFile(path)
	}
	status, result, err := hclfmt.FormatFile(path, config.NoWrite)
	if err != nil {
		slog.Warn("could not format file", "path", path, "error", err)
		return
	}
	if status == hclfmt.StatusChanged {
		if !config.NoList {
			fmt.Println(path)
		}
		if config.Diff {
			os.Stdout.WriteString(unifiedDiff(path, string(original), result))
		}
	}
}

// debouncer coalesces a burst of events for the same key into a single
// call, fired delay after the last trigger for that key — an editor's
// write-then-rename save sequence ends up running the formatter once
// instead of once per event.
type debouncer struct {
	delay time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, timers: make(map[string]*time.Timer)}
}

func (d *debouncer) trigger(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Reset(d.delay)
		return
	}
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fn()
	})
}

func addWatchRecursive(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("no file or directory at %s", path)
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
}
