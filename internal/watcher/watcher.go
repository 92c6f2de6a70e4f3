package watcher

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Runner executes one round of work after the watched paths change
type Runner interface {
	Run() error
}

// RunnerFunc adapts a plain function to the Runner interface
type RunnerFunc func() error

func (f RunnerFunc) Run() error { return f() }

// Watcher watches a set of files and directories and invokes a runner when
// any of them changes. Event bursts are debounced into a single run, and runs
// never overlap.
type Watcher struct {
	paths        []string
	runner       Runner
	watcher      *fsnotify.Watcher
	logger       *zap.Logger
	stopChan     chan struct{}
	runMu        sync.Mutex
	mu           sync.RWMutex
	debounceTime time.Duration
}

// New creates a Watcher over the given paths
func New(paths []string, runner Runner, logger *zap.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no paths to watch")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		paths:        paths,
		runner:       runner,
		watcher:      fsWatcher,
		logger:       logger,
		stopChan:     make(chan struct{}),
		debounceTime: 200 * time.Millisecond,
	}, nil
}

// SetDebounceTime overrides the event debounce window
func (w *Watcher) SetDebounceTime(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounceTime = d
}

func (w *Watcher) debounce() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.debounceTime
}

// Start registers the paths and begins dispatching events. It returns after
// the watch goroutine is running.
func (w *Watcher) Start() error {
	for _, path := range w.paths {
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.logger.Info("Watching path", zap.String("path", path))
	}

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	var debounceTimer *time.Timer
	var lastEvent time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isRelevantOp(event.Op) {
				continue
			}

			w.logger.Debug("File event",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()),
			)

			now := time.Now()
			if now.Sub(lastEvent) < w.debounce() {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
			}
			lastEvent = now

			debounceTimer = time.AfterFunc(w.debounce(), w.runOnce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watch error", zap.Error(err))

		case <-w.stopChan:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		}
	}
}

// runOnce invokes the runner, serializing against other pending runs
func (w *Watcher) runOnce() {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	start := time.Now()
	if err := w.runner.Run(); err != nil {
		w.logger.Warn("Run failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	w.logger.Info("Run succeeded", zap.Duration("elapsed", time.Since(start)))
}

// Stop shuts down the event loop and the underlying fsnotify watcher
func (w *Watcher) Stop() {
	close(w.stopChan)
	w.watcher.Close()
}

func isRelevantOp(op fsnotify.Op) bool {
	return op&fsnotify.Write == fsnotify.Write ||
		op&fsnotify.Create == fsnotify.Create ||
		op&fsnotify.Rename == fsnotify.Rename
}
