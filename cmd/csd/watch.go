package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: watch requires files", cli.ErrUsage)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for _, file := range args {
		checkFile(cc.Out, file, false)
	}
	return watchFiles(ctx, cc.Out, args, cfg.Debounce, nil)
}

type watcher struct {
	w        io.Writer
	debounce time.Duration
	files    map[string]string

	mu     sync.Mutex
	timers map[string]*time.Timer
	// checked, if set, is called after each re-check.
	checked func(file string, ok bool)
}

// watchFiles re-checks each file after it has been quiet for debounce
// following a change. The directories holding the files are watched so
// that editors which replace files are followed.
func watchFiles(ctx context.Context, w io.Writer, files []string, debounce time.Duration, checked func(string, bool)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	wt := &watcher{
		w:        w,
		debounce: debounce,
		files:    map[string]string{},
		timers:   map[string]*time.Timer{},
		checked:  checked,
	}
	dirs := map[string]bool{}
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		wt.files[abs] = file
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %q: %w", dir, err)
		}
	}
	theLog.Info("watching", "files", len(files), "debounce", debounce)
	defer wt.stop()

	for {
		select {
		case <-ctx.Done():
			theLog.Info("watch stopped")
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if ev.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			file, ok := wt.files[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			theLog.Debug("event", "file", file, "op", ev.Op.String())
			wt.trigger(file)
		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			theLog.Error("watch error", "error", err)
		}
	}
}

func (wt *watcher) trigger(file string) {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	if t, ok := wt.timers[file]; ok {
		t.Stop()
	}
	var self *time.Timer
	self = time.AfterFunc(wt.debounce, func() {
		wt.fire(file, self)
	})
	wt.timers[file] = self
}

// fire re-checks file for the timer self. A timer replaced by a later
// trigger may still fire; it leaves the newer timer in place.
func (wt *watcher) fire(file string, self *time.Timer) {
	wt.mu.Lock()
	if wt.timers[file] == self {
		delete(wt.timers, file)
	}
	ok := checkFile(wt.w, file, false)
	wt.mu.Unlock()
	if !ok {
		theLog.Warn("check failed", "file", file)
	}
	if wt.checked != nil {
		wt.checked(file, ok)
	}
}

func (wt *watcher) stop() {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	for f, t := range wt.timers {
		t.Stop()
		delete(wt.timers, f)
	}
}
