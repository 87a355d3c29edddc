package settings_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gradlemodel/internal/adapters/settings"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestParse(t *testing.T) {
	data := []byte(`
gradle_home: version:8.5
gradle_user_home: /home/dev/.gradle
jvm_args: ["-Xmx2g", "-Dfile.encoding=UTF-8"]
script_java_home: /usr/lib/jvm/java-17
project_cache_size: 25
log_level: DEBUG
snapshot_dir: /var/cache/gradlemodel
projects:
  /work/app/:
    gradle_location: dir:/opt/gradle-8.5
    script_java_home: /usr/lib/jvm/java-21/jre
`)

	s, err := settings.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, domain.VersionLocation("8.5"), s.GradleHome)
	assert.Equal(t, "/home/dev/.gradle", s.GradleUserHome)
	assert.Equal(t, []string{"-Xmx2g", "-Dfile.encoding=UTF-8"}, s.JVMArgs)
	assert.Equal(t, "/usr/lib/jvm/java-17", s.ScriptJavaHome)
	assert.Equal(t, 25, s.ProjectCacheSize)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "/var/cache/gradlemodel", s.SnapshotDir)

	props, ok := s.PropertiesFor("/work/app")
	require.True(t, ok)
	assert.Equal(t, domain.DirectoryLocation("/opt/gradle-8.5"), props.GradleLocation)
	assert.Equal(t, "/usr/lib/jvm/java-21/jre", props.ScriptJavaHome)
}

func TestParse_Defaults(t *testing.T) {
	s, err := settings.Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProjectCacheSize, s.ProjectCacheSize)
	assert.True(t, s.GradleHome.IsDefault())
	assert.Equal(t, "info", s.LogLevel)
	assert.NotEmpty(t, s.SnapshotDir)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		target error
	}{
		{name: "invalid yaml", data: "gradle_home: [", target: nil},
		{name: "invalid location", data: "gradle_home: nightly", target: domain.ErrInvalidGradleLocation},
		{
			name:   "invalid project location",
			data:   "projects:\n  /p:\n    gradle_location: 'version:'\n",
			target: domain.ErrInvalidGradleLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := settings.Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target))
			}
		})
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	s, err := settings.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return log
}

func TestSource_ReloadNotifiesListeners(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("project_cache_size: 10\n"), domain.PrivateFilePerm))

	src := settings.NewSource(path, newLogger(t))
	require.NoError(t, src.Err())
	assert.Equal(t, 10, src.Settings().ProjectCacheSize)

	var got atomic.Int64
	src.OnChange(func(s domain.Settings) { got.Store(int64(s.ProjectCacheSize)) })

	require.NoError(t, os.WriteFile(path, []byte("project_cache_size: 3\n"), domain.PrivateFilePerm))
	require.NoError(t, src.Reload())
	assert.Equal(t, int64(3), got.Load())
	assert.Equal(t, 3, src.Settings().ProjectCacheSize)
}

func TestSource_InvalidFileKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("project_cache_size: 10\n"), domain.PrivateFilePerm))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).Times(1)

	src := settings.NewSource(path, log)
	called := false
	src.OnChange(func(domain.Settings) { called = true })

	require.NoError(t, os.WriteFile(path, []byte("gradle_home: bogus\n"), domain.PrivateFilePerm))
	err := src.Reload()
	require.Error(t, err)
	assert.Equal(t, err, src.Err())
	assert.Equal(t, 10, src.Settings().ProjectCacheSize)
	assert.False(t, called)
}

func TestSource_Open(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("log_level: warn\n"), domain.PrivateFilePerm))

	src := settings.NewSource(filepath.Join(dir, "missing.yaml"), newLogger(t))
	assert.Equal(t, "info", src.Settings().LogLevel)

	require.NoError(t, src.Open(other))
	assert.Equal(t, other, src.Path())
	assert.Equal(t, "warn", src.Settings().LogLevel)
}

func TestSource_WatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("project_cache_size: 10\n"), domain.PrivateFilePerm))

	src := settings.NewSource(path, newLogger(t))
	var size atomic.Int64
	src.OnChange(func(s domain.Settings) { size.Store(int64(s.ProjectCacheSize)) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Watch(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("project_cache_size: 42\n"), domain.PrivateFilePerm))

	assert.Eventually(t, func() bool { return size.Load() == 42 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
