package watch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/suryansh-23/redactkit/internal/debug"
)

// DefaultDebounce coalesces bursts of writes from editors.
const DefaultDebounce = 150 * time.Millisecond

// Options configures a File watcher.
type Options struct {
	Debounce time.Duration
	Logger   *debug.Logger
}

// Func receives the file content after every settled change.
type Func func(content []byte) error

// File calls fn with the content of path once immediately and again whenever
// the content changes, until ctx is done or fn returns an error. The parent
// directory is watched so atomic saves that replace the file are seen.
func File(ctx context.Context, path string, opts Options, fn Func) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	last, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := fn(last); err != nil {
		return err
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

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
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Infof("watch: %v", err)
		case <-timer.C:
			content, err := os.ReadFile(abs)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					// Mid-rename; the following Create re-arms the timer.
					continue
				}
				return fmt.Errorf("read %s: %w", path, err)
			}
			if bytes.Equal(content, last) {
				continue
			}
			last = content
			opts.Logger.Debugw("watch change", "bytes", len(content))
			if err := fn(content); err != nil {
				return err
			}
		}
	}
}
