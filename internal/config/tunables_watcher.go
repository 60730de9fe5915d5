package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"resumetric/internal/errors"
)

// TunablesFile is the on-disk shape of a live-reloadable tunables override.
// Zero fields leave the current value unchanged.
type TunablesFile struct {
	MinWords          int     `yaml:"minWords"`
	MaxWords          int     `yaml:"maxWords"`
	TopSuggestions    int     `yaml:"topSuggestions"`
	IndustryThreshold float64 `yaml:"industryThreshold"`
}

// TunablesWatcher watches the analysis tunables file and pushes updates to a
// callback. Atomic writes (write-to-temp then rename) are handled by also
// watching the containing directory.
type TunablesWatcher struct {
	mu sync.Mutex

	path          string
	lastModTime   time.Time
	fsWatcher     *fsnotify.Watcher
	debounceDelay time.Duration
	debounceTimer *time.Timer

	stopChan   chan struct{}
	reloadChan chan struct{}

	onChange func(TunablesFile)
	logger   *errors.Logger

	running bool
}

// NewTunablesWatcher creates a watcher for the given tunables file.
func NewTunablesWatcher(path string, onChange func(TunablesFile), logger *errors.Logger) *TunablesWatcher {
	return &TunablesWatcher{
		path:          path,
		debounceDelay: time.Second,
		stopChan:      make(chan struct{}),
		reloadChan:    make(chan struct{}, 1),
		onChange:      onChange,
		logger:        logger,
	}
}

// ReadTunablesFile parses a tunables override file.
func ReadTunablesFile(path string) (TunablesFile, error) {
	var out TunablesFile
	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("failed to read tunables file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to parse tunables file %s: %w", path, err)
	}
	return out, nil
}

// Start begins watching the tunables file for changes.
func (tw *TunablesWatcher) Start() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.running {
		return fmt.Errorf("tunables watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	tw.fsWatcher = watcher

	if stat, err := os.Stat(tw.path); err == nil {
		tw.lastModTime = stat.ModTime()
	}

	if err := tw.fsWatcher.Add(tw.path); err != nil {
		if !os.IsNotExist(err) {
			tw.fsWatcher.Close()
			return fmt.Errorf("failed to watch file %s: %w", tw.path, err)
		}
	}
	// Watch the directory too, to catch atomic replaces.
	if err := tw.fsWatcher.Add(filepath.Dir(tw.path)); err != nil {
		tw.fsWatcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", filepath.Dir(tw.path), err)
	}

	tw.running = true
	go tw.watchLoop()

	if tw.logger != nil {
		tw.logger.Info("Tunables file watcher started",
			"file", tw.path,
			"debounce_delay", tw.debounceDelay)
	}
	return nil
}

// IsRunning reports whether the watcher is active.
func (tw *TunablesWatcher) IsRunning() bool {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.running
}

// Stop stops the watcher.
func (tw *TunablesWatcher) Stop() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.running {
		return nil
	}

	close(tw.stopChan)
	if tw.debounceTimer != nil {
		tw.debounceTimer.Stop()
	}
	if tw.fsWatcher != nil {
		if err := tw.fsWatcher.Close(); err != nil {
			if tw.logger != nil {
				tw.logger.LogError(err, "Failed to close file system watcher")
			}
			return err
		}
	}
	tw.running = false

	if tw.logger != nil {
		tw.logger.Info("Tunables file watcher stopped")
	}
	return nil
}

func (tw *TunablesWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-tw.fsWatcher.Events:
			if !ok {
				return
			}
			if tw.shouldProcessEvent(event) {
				tw.scheduleReload()
			}

		case err, ok := <-tw.fsWatcher.Errors:
			if !ok {
				return
			}
			if tw.logger != nil {
				tw.logger.LogError(err, "Tunables watcher error")
			}

		case <-tw.reloadChan:
			if tw.hasFileChanged() {
				tw.reload()
			}

		case <-tw.stopChan:
			return
		}
	}
}

func (tw *TunablesWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Name != tw.path && filepath.Base(event.Name) != filepath.Base(tw.path) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (tw *TunablesWatcher) hasFileChanged() bool {
	stat, err := os.Stat(tw.path)
	if err != nil {
		return false
	}
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if stat.ModTime().After(tw.lastModTime) {
		tw.lastModTime = stat.ModTime()
		return true
	}
	return false
}

func (tw *TunablesWatcher) scheduleReload() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.debounceTimer != nil {
		tw.debounceTimer.Stop()
	}
	tw.debounceTimer = time.AfterFunc(tw.debounceDelay, func() {
		select {
		case tw.reloadChan <- struct{}{}:
		default:
		}
	})
}

func (tw *TunablesWatcher) reload() {
	parsed, err := ReadTunablesFile(tw.path)
	if err != nil {
		if tw.logger != nil {
			tw.logger.Warn("Ignoring invalid tunables file update", "file", tw.path, "error", err.Error())
		}
		return
	}
	if tw.logger != nil {
		tw.logger.Info("Tunables file changed, applying update", "file", tw.path)
	}
	tw.onChange(parsed)
}
