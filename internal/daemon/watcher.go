// Package daemon provides the debounced source watcher behind `flint watch`.
package daemon

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig contains configuration for the source watcher.
type WatcherConfig struct {
	// ProjectDir is the root directory to watch.
	ProjectDir string

	// Patterns are base-name glob patterns to match (e.g., "*.c").
	Patterns []string

	// IgnorePatterns match path components to skip (e.g., ".git", "build").
	IgnorePatterns []string

	// Debounce collapses a burst of events into a single change.
	Debounce time.Duration
}

// DefaultWatcherConfig returns a configuration covering the files that feed
// a firmware build. The build output directory is ignored so rebuilds do not
// retrigger themselves.
func DefaultWatcherConfig(projectDir string) *WatcherConfig {
	return &WatcherConfig{
		ProjectDir: projectDir,
		Patterns: []string{
			"*.c", "*.h", "*.cc", "*.cpp", "*.hpp",
			"*.s", "*.S", "*.ld",
			"CMakeLists.txt", "*.cmake",
		},
		IgnorePatterns: []string{
			".git",
			"build",
			".idea",
			".vscode",
		},
		Debounce: 300 * time.Millisecond,
	}
}

// Watcher emits one Change per debounced burst of source modifications.
type Watcher struct {
	config  *WatcherConfig
	watcher *fsnotify.Watcher
	changes chan string
	errors  chan error
	done    chan struct{}

	mu      sync.Mutex
	running bool
	timer   *time.Timer
	last    string
}

// NewWatcher creates a new source watcher.
func NewWatcher(config *WatcherConfig) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		config:  config,
		watcher: fsWatcher,
		changes: make(chan string, 1),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. New subdirectories created while watching are added
// as they appear.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addRecursive(w.config.ProjectDir); err != nil {
		return err
	}

	go w.loop(ctx)
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	w.running = false
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)

	return w.watcher.Close()
}

// Changes returns a channel that receives the path of the most recent change
// in each debounced burst.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		for _, pattern := range w.config.IgnorePatterns {
			if matched, _ := filepath.Match(pattern, info.Name()); matched {
				return filepath.SkipDir
			}
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	// Watch directories created after startup.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !w.ignored(event.Name) {
				_ = w.addRecursive(event.Name)
			}
			return
		}
	}

	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !w.matches(event.Name) || w.ignored(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = event.Name
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.config.Debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	path := w.last
	running := w.running
	w.mu.Unlock()

	if !running {
		return
	}
	select {
	case w.changes <- path:
	default:
		// A change is already pending; the rebuild it triggers will pick
		// this one up too.
	}
}

func (w *Watcher) matches(path string) bool {
	if len(w.config.Patterns) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, pattern := range w.config.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func (w *Watcher) ignored(path string) bool {
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		for _, pattern := range w.config.IgnorePatterns {
			if matched, _ := filepath.Match(pattern, part); matched {
				return true
			}
		}
	}
	return false
}
