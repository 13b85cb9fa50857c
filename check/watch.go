package check

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-validates keymap files whenever they change on disk.
type Watcher struct {
	checker    *Checker
	watcher    *fsnotify.Watcher
	logger     *zap.Logger
	extensions []string

	// isWatching is read by the watch loop goroutine and written by
	// Start/Stop, which may run on another goroutine.
	isWatching atomic.Bool
}

// NewWatcher returns a watcher backed by the given checker.
func NewWatcher(checker *Checker, logger *zap.Logger, extensions []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		checker:    checker,
		watcher:    fsw,
		logger:     logger,
		extensions: extensions,
	}, nil
}

// Start registers every directory under dirs and begins re-validating
// matching files on write events.
func (w *Watcher) Start(dirs []string) error {
	if w.isWatching.Load() {
		return fmt.Errorf("already watching")
	}

	for _, dir := range dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.isWatching.Store(true)
	go w.watchLoop()
	return nil
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() error {
	if !w.isWatching.Load() {
		w.logger.Warn("not watching")
	}
	w.isWatching.Store(false)
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isWatching.Load() {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !w.hasWatchedExtension(event.Name) {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)

	_, res, err := w.checker.Run(event.Name)
	if err != nil {
		w.logger.Warn("keymap failed validation",
			zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.logger.Info("keymap is valid",
		zap.String("file", event.Name),
		zap.Int("layers", len(res.Layers)),
		zap.Int("keys", res.KeyCount()))
}

func (w *Watcher) hasWatchedExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, targetExt := range w.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
