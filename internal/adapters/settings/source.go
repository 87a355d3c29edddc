package settings

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow is the default time window for coalescing settings file events.
const DefaultDebounceWindow = 100 * time.Millisecond

var _ ports.SettingsSource = (*Source)(nil)

// Source serves the settings file at a path and reloads it when it changes.
// A file that fails to load leaves the previous settings in place.
type Source struct {
	logger ports.Logger
	window time.Duration

	mu        sync.RWMutex
	path      string
	current   domain.Settings
	err       error
	listeners []func(domain.Settings)
}

// NewSource creates a source for path and loads it once.
func NewSource(path string, logger ports.Logger) *Source {
	s := &Source{
		logger:  logger,
		window:  DefaultDebounceWindow,
		path:    path,
		current: domain.DefaultSettings(),
	}
	_ = s.Reload()
	return s
}

// Open points the source at a different file and reloads.
func (s *Source) Open(path string) error {
	s.mu.Lock()
	s.path = path
	s.mu.Unlock()
	return s.Reload()
}

// Path returns the settings file path.
func (s *Source) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Settings returns the most recent valid settings.
func (s *Source) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Err returns the error of the last load attempt.
func (s *Source) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// OnChange registers fn to run after every successful reload.
func (s *Source) OnChange(fn func(domain.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload reads the settings file and notifies listeners on success.
func (s *Source) Reload() error {
	path := s.Path()
	loaded, err := Load(path)

	s.mu.Lock()
	s.err = err
	if err == nil {
		s.current = loaded
	}
	listeners := make([]func(domain.Settings), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error(err)
		return err
	}

	for _, fn := range listeners {
		fn(loaded)
	}
	return nil
}

// Watch reloads the settings whenever the file changes, until ctx is done.
// The parent directory is watched so editors that replace the file are handled.
func (s *Source) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create settings watcher")
	}
	defer watcher.Close() //nolint:errcheck // Best effort close in defer

	path := filepath.Clean(s.Path())
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch settings directory"), "dir", dir)
	}

	debouncer := NewDebouncer(s.window, func() {
		if err := s.Reload(); err == nil {
			s.logger.Info("reloaded settings from " + path)
		}
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				debouncer.Trigger()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("settings watcher: " + err.Error())
		}
	}
}
