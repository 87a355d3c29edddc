// Package loader implements the serialized gradle model loading pipeline.
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultQueueSize is the number of tasks that may wait for the worker.
const DefaultQueueSize = 64

// CompleteFunc receives the result of a scheduled task exactly once.
type CompleteFunc func(model *domain.Model, err error)

type task struct {
	id           uuid.UUID
	project      ports.Project
	caption      string
	cacheAllowed bool
	onComplete   CompleteFunc
}

// Loader runs model loading tasks one at a time in submission order.
type Loader struct {
	connector     ports.ToolingConnector
	cache         ports.ModelCache
	store         ports.SnapshotStore
	fingerprinter ports.Fingerprinter
	settings      ports.SettingsSource
	progress      ports.Progress
	logger        ports.Logger

	fetcher     *Fetcher
	distributor *Distributor
	listeners   Listeners

	tasks       chan task
	mu          sync.Mutex
	closed      bool
	closing     chan struct{}
	senders     sync.WaitGroup
	stopped     chan struct{}
	stoppedOnce sync.Once
}

// New creates a Loader. Tasks are only processed while Run is active.
func New(
	connector ports.ToolingConnector,
	cache ports.ModelCache,
	store ports.SnapshotStore,
	fingerprinter ports.Fingerprinter,
	settings ports.SettingsSource,
	progress ports.Progress,
	logger ports.Logger,
) *Loader {
	return &Loader{
		connector:     connector,
		cache:         cache,
		store:         store,
		fingerprinter: fingerprinter,
		settings:      settings,
		progress:      progress,
		logger:        logger,
		fetcher:       NewFetcher(logger),
		distributor:   NewDistributor(),
		tasks:         make(chan task, DefaultQueueSize),
		closing:       make(chan struct{}),
		stopped:       make(chan struct{}),
	}
}

// FetchModel schedules loading the model of project.
func (l *Loader) FetchModel(project ports.Project, mayUseCache bool, onComplete CompleteFunc) {
	l.Schedule(project, fmt.Sprintf("loading gradle project %s", project.DisplayName()), mayUseCache, onComplete)
}

// Schedule queues a task. onComplete runs on the worker, or on the calling
// goroutine with domain.ErrLoaderClosed when the loader no longer accepts work.
// No lock is held while onComplete runs.
func (l *Loader) Schedule(project ports.Project, caption string, cacheAllowed bool, onComplete CompleteFunc) {
	t := task{
		id:           uuid.New(),
		project:      project,
		caption:      caption,
		cacheAllowed: cacheAllowed,
		onComplete:   onComplete,
	}
	if !l.enqueue(t) {
		onComplete(nil, closedError(project))
	}
}

// enqueue hands t to the worker. It gives up once Close or a cancelled Run
// stops the loader while the queue is full.
func (l *Loader) enqueue(t task) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.senders.Add(1)
	l.mu.Unlock()
	defer l.senders.Done()

	select {
	case l.tasks <- t:
		return true
	case <-l.closing:
		return false
	case <-l.stopped:
		return false
	}
}

// CreateEmptyModel returns a placeholder model for dir. It is not cached.
func (l *Loader) CreateEmptyModel(dir string) *domain.Model {
	return domain.NewEmptyModel(filepath.Clean(dir))
}

// AddModelLoadedListener registers a listener for newly cached models.
func (l *Loader) AddModelLoadedListener(listener ports.ModelLoadListener) {
	l.listeners.Add(listener)
}

// RemoveModelLoadedListener unregisters a listener.
func (l *Loader) RemoveModelLoadedListener(listener ports.ModelLoadListener) {
	l.listeners.Remove(listener)
}

// Close stops accepting tasks. Tasks already queued still run; submitters
// still waiting for queue space are rejected.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.closing)
	l.mu.Unlock()

	// Pending senders return promptly once closing is closed.
	l.senders.Wait()
	close(l.tasks)
}

// Run processes tasks until Close was called and the queue is drained, or ctx
// is cancelled. Tasks left in the queue on cancellation complete with
// domain.ErrLoaderClosed.
func (l *Loader) Run(ctx context.Context) error {
	for {
		select {
		case t, ok := <-l.tasks:
			if !ok {
				l.stop()
				return nil
			}
			l.execute(ctx, t)
		case <-ctx.Done():
			l.stop()
			l.Close()
			for t := range l.tasks {
				t.onComplete(nil, closedError(t.project))
			}
			return ctx.Err()
		}
	}
}

func (l *Loader) stop() {
	l.stoppedOnce.Do(func() { close(l.stopped) })
}

func closedError(project ports.Project) error {
	return zerr.With(zerr.Wrap(domain.ErrLoaderClosed, "task rejected"), "dir", project.Directory())
}

func (l *Loader) execute(ctx context.Context, t task) {
	handle := l.progress.Start(t.caption)
	l.logger.Debug(fmt.Sprintf("task %s started: %s", t.id, t.caption))

	model, err := l.runTask(ctx, t, handle)

	handle.Finish(err)
	t.onComplete(model, err)
}

func (l *Loader) runTask(ctx context.Context, t task, handle ports.ProgressHandle) (model *domain.Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			model = nil
			err = zerr.With(zerr.With(zerr.Wrap(domain.ErrTaskPanicked, "task aborted"), "task", t.id.String()), "panic", fmt.Sprint(r))
		}
	}()
	return l.load(ctx, t, handle)
}

func (l *Loader) load(ctx context.Context, t task, handle ports.ProgressHandle) (*domain.Model, error) {
	dir := filepath.Clean(t.project.Directory())
	refs := t.project.Extensions()
	ids := ports.ExtensionIDs(refs)

	fp, err := l.fingerprinter.Fingerprint(dir)
	if err != nil {
		if !errors.Is(err, domain.ErrSettingsFileNotFound) {
			l.logger.Warn(fmt.Sprintf("failed to fingerprint %s: %v", dir, err))
		}
		fp = domain.Fingerprint{}
	}

	var proposed *BuildResult
	if t.cacheAllowed {
		if m, ok := l.cache.TryGet(dir, fp); ok {
			if !m.HasUnloadedExtensions(ids) {
				return m, nil
			}
			proposed = &BuildResult{Main: m}
			refs = unloaded(refs, m)
		} else if snap := l.fromSnapshot(dir, fp); snap != nil {
			if len(ids) == 0 {
				l.publish(snap.All())
				return snap.Main, nil
			}
			proposed = snap
		}
	}

	result, err := l.fetch(ctx, t.project, fp, proposed, refs, handle)
	if err != nil {
		return nil, err
	}
	return result.Main, nil
}

func unloaded(refs []ports.ExtensionRef, m *domain.Model) []ports.ExtensionRef {
	missing := m.UnloadedExtensions(ports.ExtensionIDs(refs))
	out := make([]ports.ExtensionRef, 0, len(missing))
	for _, ref := range refs {
		if slices.Contains(missing, ref.ID) {
			out = append(out, ref)
		}
	}
	return out
}

// fromSnapshot rebuilds the models stored on disk for dir, if they were stored
// for the current settings fingerprint.
func (l *Loader) fromSnapshot(dir string, fp domain.Fingerprint) *BuildResult {
	if l.store == nil || fp.IsZero() {
		return nil
	}
	snap, err := l.store.Get(dir)
	if err != nil {
		l.logger.Debug(fmt.Sprintf("ignoring snapshot of %s: %v", dir, err))
		return nil
	}
	if snap == nil || !snap.Fingerprint.Matches(fp) {
		return nil
	}
	result, err := BuildAll(snap.Project, dir, fp)
	if err != nil {
		l.logger.Debug(fmt.Sprintf("ignoring snapshot of %s: %v", dir, err))
		return nil
	}
	return result
}

func (l *Loader) fetch(
	ctx context.Context,
	project ports.Project,
	fp domain.Fingerprint,
	proposed *BuildResult,
	refs []ports.ExtensionRef,
	handle ports.ProgressHandle,
) (*BuildResult, error) {
	cfg := ConnectorConfigFor(project, l.settings.Settings(), l.logger)

	conn, err := l.connector.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	result, resolved, err := l.roundTrip(ctx, conn, cfg, fp, proposed, refs, handle)
	if err != nil {
		return nil, err
	}

	handle.Progress("parsing model")
	l.distributor.Deduce(refs, resolved, result.Main, result.Known())

	if proposed == nil {
		l.saveSnapshot(cfg.ProjectDir, fp, result.Project)
	}
	l.publish(result.All())
	return result, nil
}

// roundTrip talks to the build over conn and always closes it. A close failure
// is logged and never replaces the result.
func (l *Loader) roundTrip(
	ctx context.Context,
	conn ports.Connection,
	cfg domain.ConnectorConfig,
	fp domain.Fingerprint,
	proposed *BuildResult,
	refs []ports.ExtensionRef,
	handle ports.ProgressHandle,
) (*BuildResult, map[string]domain.Lookup, error) {
	defer func() {
		if err := conn.Close(); err != nil {
			l.logger.Warn(fmt.Sprintf("failed to close gradle connection for %s: %v", cfg.ProjectDir, err))
		}
	}()

	result := proposed
	if result == nil {
		project, err := l.fetcher.FetchPrimary(ctx, conn, cfg, handle)
		if err != nil {
			return nil, nil, err
		}
		result, err = BuildAll(project, cfg.ProjectDir, fp)
		if err != nil {
			return nil, nil, err
		}
	}

	fetch := func(ctx context.Context, class domain.ModelClass) (FetchResult, error) {
		return l.fetcher.FetchExtension(ctx, conn, cfg, handle, class)
	}
	resolved, err := l.distributor.Resolve(ctx, refs, result.Main.AllModels(), fetch)
	if err != nil {
		return nil, nil, err
	}
	return result, resolved, nil
}

func (l *Loader) saveSnapshot(dir string, fp domain.Fingerprint, project domain.IdeaProject) {
	if l.store == nil || fp.IsZero() {
		return
	}
	err := l.store.Put(domain.ModelSnapshot{
		ProjectDir:  dir,
		Fingerprint: fp,
		Project:     project,
		StoredAt:    time.Now(),
	})
	if err != nil {
		l.logger.Warn(fmt.Sprintf("failed to store model snapshot for %s: %v", dir, err))
	}
}

func (l *Loader) publish(models []*domain.Model) {
	for _, m := range models {
		l.cache.Put(m)
		l.listeners.Fire(m)
	}
}
