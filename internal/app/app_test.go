package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gradlemodel/internal/adapters/extension"
	"go.trai.ch/gradlemodel/internal/app"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/gradlemodel/internal/core/ports/mocks"
	"go.trai.ch/gradlemodel/internal/engine/loader"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func ideaModule(name, dir, path string, children ...string) domain.IdeaModule {
	return domain.IdeaModule{
		Name:          name,
		ContentRoots:  []domain.IdeaContentRoot{{RootDirectory: dir, SourceDirectories: []string{dir + "/src/main/java"}}},
		GradleProject: domain.GradleProject{Name: name, Path: path, Children: children},
	}
}

var demoProject = domain.IdeaProject{
	Name: "demo",
	Modules: []domain.IdeaModule{
		ideaModule("demo", "/work/demo", ":", ":app", ":lib"),
		ideaModule("app", "/work/demo/app", ":app", ":app:core"),
		ideaModule("core", "/work/demo/app/core", ":app:core"),
		ideaModule("lib", "/work/demo/lib", ":lib"),
	},
}

type fakeGradle struct{}

func (fakeGradle) Connect(context.Context, domain.ConnectorConfig) (ports.Connection, error) {
	return fakeGradle{}, nil
}

func (fakeGradle) Model(_ context.Context, req domain.ModelRequest) (any, error) {
	switch req.Class {
	case domain.IdeaProjectModel:
		return demoProject, nil
	case domain.BuildEnvironmentModel:
		return domain.BuildEnvironment{GradleVersion: "8.10", JavaHome: "/opt/jdk"}, nil
	}
	return nil, zerr.Wrap(domain.ErrUnknownModel, "unsupported")
}

func (fakeGradle) Close() error { return nil }

type fakeSettings struct {
	mu        sync.Mutex
	current   domain.Settings
	err       error
	listeners []func(domain.Settings)
	opened    string
}

func (f *fakeSettings) Settings() domain.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeSettings) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeSettings) OnChange(fn func(domain.Settings)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

func (f *fakeSettings) Open(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened = path
	return nil
}

func (f *fakeSettings) Watch(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (f *fakeSettings) change(s domain.Settings) {
	f.mu.Lock()
	f.current = s
	listeners := append([]func(domain.Settings){}, f.listeners...)
	f.mu.Unlock()
	for _, fn := range listeners {
		fn(s)
	}
}

type levelRecorder struct {
	mu     sync.Mutex
	levels []string
}

func (r *levelRecorder) SetLevel(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels = append(r.levels, name)
}

func (r *levelRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levels[len(r.levels)-1]
}

type fixture struct {
	app      *app.App
	settings *fakeSettings
	levels   *levelRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	fingerprinter := mocks.NewMockFingerprinter(ctrl)
	fingerprinter.EXPECT().Fingerprint(gomock.Any()).Return(domain.Fingerprint{
		Path: "/work/demo/settings.gradle", ModTime: time.Unix(1700000000, 0), Size: 10, Hash: 1,
	}, nil).AnyTimes()

	store := mocks.NewMockSnapshotStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().Put(gomock.Any()).Return(nil).AnyTimes()

	handle := mocks.NewMockProgressHandle(ctrl)
	handle.EXPECT().Progress(gomock.Any()).AnyTimes()
	handle.EXPECT().Finish(gomock.Any()).AnyTimes()
	progress := mocks.NewMockProgress(ctrl)
	progress.EXPECT().Start(gomock.Any()).Return(handle).AnyTimes()

	modelCache := mocks.NewMockModelCache(ctrl)
	modelCache.EXPECT().TryGet(gomock.Any(), gomock.Any()).Return(nil, false).AnyTimes()
	modelCache.EXPECT().Put(gomock.Any()).AnyTimes()

	settings := &fakeSettings{current: domain.DefaultSettings()}
	l := loader.New(fakeGradle{}, modelCache, store, fingerprinter, settings, progress, log)
	levels := &levelRecorder{}

	return &fixture{
		app:      app.New(l, settings, extension.Builtin().Refs(), log, levels),
		settings: settings,
		levels:   levels,
	}
}

func TestApp_FetchRendersTree(t *testing.T) {
	f := newFixture(t)

	models, err := f.app.Fetch(context.Background(), []string{"/work/demo"}, true)
	require.NoError(t, err)
	require.Len(t, models, 1)

	var buf bytes.Buffer
	require.NoError(t, app.RenderTree(&buf, models[0]))

	g := goldie.New(t)
	g.Assert(t, "fetch_tree", buf.Bytes())
}

func TestApp_FetchView(t *testing.T) {
	f := newFixture(t)

	models, err := f.app.Fetch(context.Background(), []string{"/work/demo/app"}, false)
	require.NoError(t, err)

	view := app.View(models[0])
	assert.Equal(t, "app", view.Name)
	assert.Equal(t, ":app", view.Path)
	assert.Equal(t, "/work/demo", view.Root, "build root comes from the settings file")
	require.Len(t, view.Children, 1)
	assert.Equal(t, "/work/demo/app/core", view.Children[0].Dir)
	assert.Contains(t, view.Extensions[extension.JavaSourcesID], extension.JavaSourcesModel)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path":":app:core"`)
	assert.Contains(t, string(data), `"root":"/work/demo"`)
}

func TestApp_FetchFailure(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Fetch(context.Background(), []string{"/work/demo", "/elsewhere"}, true)
	assert.ErrorIs(t, err, domain.ErrTreeAssembly)
}

func TestApp_EmptyModel(t *testing.T) {
	f := newFixture(t)

	m, err := f.app.EmptyModel("/work/demo")
	require.NoError(t, err)
	assert.Equal(t, "/work/demo", m.ProjectDir())
	assert.Empty(t, m.ProjectInfo().Children())
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loaded := make(chan string, 64)
	done := make(chan error, 1)
	go func() {
		done <- f.app.Watch(ctx, "/work/demo", func(m *domain.Model) {
			loaded <- m.ProjectDir()
		})
	}()

	waitFor := func(n int) {
		t.Helper()
		for range n {
			select {
			case <-loaded:
			case <-time.After(5 * time.Second):
				t.Fatal("model was not loaded")
			}
		}
	}

	waitFor(4)
	f.settings.change(domain.DefaultSettings())
	waitFor(4)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestApp_LogLevel(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "info", f.levels.last())

	f.app.SetVerbose(true)
	assert.Equal(t, "debug", f.levels.last())

	s := domain.DefaultSettings()
	s.LogLevel = "warn"
	f.settings.change(s)
	assert.Equal(t, "debug", f.levels.last(), "verbose wins over the settings file")

	f.app.SetVerbose(false)
	assert.Equal(t, "warn", f.levels.last())
}

func TestApp_UseSettingsFile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.app.UseSettingsFile("/etc/gradlemodel.yaml"))
	assert.Equal(t, "/etc/gradlemodel.yaml", f.settings.opened)
}

func TestProject_Properties(t *testing.T) {
	f := newFixture(t)
	s := domain.DefaultSettings()
	s.Projects = map[string]domain.ProjectProperties{
		"/work/demo": {GradleLocation: domain.VersionLocation("8.5")},
	}
	f.settings.change(s)

	p, err := f.app.Project("/work/demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", p.DisplayName())
	assert.Len(t, p.Extensions(), 1)

	props, ok := p.Properties()
	require.True(t, ok)
	assert.Equal(t, domain.VersionLocation("8.5"), props.GradleLocation)

	other, err := f.app.Project("/work/other")
	require.NoError(t, err)
	props, ok = other.Properties()
	assert.True(t, ok)
	assert.True(t, props.GradleLocation.IsDefault())

	f.settings.mu.Lock()
	f.settings.err = zerr.Wrap(domain.ErrConfigParseFailed, "bad yaml")
	f.settings.mu.Unlock()
	_, ok = p.Properties()
	assert.False(t, ok, "broken settings make properties unavailable")
}
