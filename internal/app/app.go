// Package app implements the application layer for gradlemodel.
package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/gradlemodel/internal/engine/loader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SettingsWatcher is a settings source that can be re-pointed and watched.
type SettingsWatcher interface {
	ports.SettingsSource
	Open(path string) error
	Watch(ctx context.Context) error
}

// LevelSetter changes the minimum log level by name.
type LevelSetter interface {
	SetLevel(name string)
}

// App represents the main application logic.
type App struct {
	loader     *loader.Loader
	settings   SettingsWatcher
	extensions []ports.ExtensionRef
	logger     ports.Logger
	levels     LevelSetter

	verbose atomic.Bool
}

// New creates a new App instance. The log level follows the settings file
// unless verbose output was requested.
func New(
	l *loader.Loader,
	settings SettingsWatcher,
	extensions []ports.ExtensionRef,
	logger ports.Logger,
	levels LevelSetter,
) *App {
	a := &App{
		loader:     l,
		settings:   settings,
		extensions: extensions,
		logger:     logger,
		levels:     levels,
	}
	a.applyLevel(settings.Settings())
	settings.OnChange(a.applyLevel)
	return a
}

// SetVerbose forces debug logging on or off.
func (a *App) SetVerbose(v bool) {
	a.verbose.Store(v)
	a.applyLevel(a.settings.Settings())
}

func (a *App) applyLevel(s domain.Settings) {
	if a.levels == nil {
		return
	}
	if a.verbose.Load() {
		a.levels.SetLevel("debug")
		return
	}
	a.levels.SetLevel(s.LogLevel)
}

// UseSettingsFile loads settings from path instead of the default location.
func (a *App) UseSettingsFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid settings path"), "path", path)
	}
	return a.settings.Open(abs)
}

// Project returns the project for dir, configured from the current settings.
func (a *App) Project(dir string) (ports.Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid project directory"), "dir", dir)
	}
	return &project{dir: abs, settings: a.settings, extensions: a.extensions}, nil
}

// EmptyModel returns the placeholder model for dir.
func (a *App) EmptyModel(dir string) (*domain.Model, error) {
	p, err := a.Project(dir)
	if err != nil {
		return nil, err
	}
	return a.loader.CreateEmptyModel(p.Directory()), nil
}

// Fetch loads the models of dirs, in order. The loader is closed afterwards,
// so Fetch and Watch may only be used once per App.
func (a *App) Fetch(ctx context.Context, dirs []string, useCache bool) ([]*domain.Model, error) {
	projects := make([]ports.Project, 0, len(dirs))
	for _, dir := range dirs {
		p, err := a.Project(dir)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.loader.Run(gctx)
	})

	models := make([]*domain.Model, len(projects))
	errs := make([]error, len(projects))
	var wg sync.WaitGroup
	wg.Add(len(projects))
	for i, p := range projects {
		a.loader.FetchModel(p, useCache, func(m *domain.Model, err error) {
			defer wg.Done()
			models[i] = m
			errs[i] = err
		})
	}
	wg.Wait()
	a.loader.Close()

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return models, nil
}

type listenerFunc struct {
	fn func(*domain.Model)
}

func (l *listenerFunc) OnModelLoaded(m *domain.Model) { l.fn(m) }

// Watch loads the model of dir and reloads it whenever the settings change,
// calling onModel for every model put into the cache. It returns when ctx is done.
func (a *App) Watch(ctx context.Context, dir string, onModel func(*domain.Model)) error {
	p, err := a.Project(dir)
	if err != nil {
		return err
	}

	listener := &listenerFunc{fn: onModel}
	a.loader.AddModelLoadedListener(listener)
	defer a.loader.RemoveModelLoadedListener(listener)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.loader.Run(gctx)
	})
	g.Go(func() error {
		if err := a.settings.Watch(gctx); err != nil {
			a.logger.Warn("settings changes will not be picked up: " + err.Error())
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.loader.Close()
		return nil
	})

	refresh := func(useCache bool) {
		if gctx.Err() != nil {
			return
		}
		a.loader.FetchModel(p, useCache, func(_ *domain.Model, err error) {
			if err != nil && !errors.Is(err, domain.ErrLoaderClosed) {
				a.logger.Error(err)
			}
		})
	}
	a.settings.OnChange(func(domain.Settings) { refresh(false) })
	refresh(true)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
