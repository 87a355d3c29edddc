package gradle_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gradlemodel/internal/adapters/gradle"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fakeGradle = `#!/bin/sh
model=""
output=""
projectDir=""
task=""
prev=""
for arg in "$@"; do
  if [ "$prev" = "--project-dir" ]; then projectDir="$arg"; fi
  case "$arg" in
    -Dgradlemodel.model=*) model="${arg#-Dgradlemodel.model=}" ;;
    -Dgradlemodel.output=*) output="${arg#-Dgradlemodel.output=}" ;;
    -*) ;;
    *) if [ "$prev" != "--project-dir" ] && [ "$prev" != "--init-script" ] && [ "$prev" != "--gradle-user-home" ]; then task="$arg"; fi ;;
  esac
  prev="$arg"
done
if [ "$task" != ":gradlemodelExport" ] && [ ! -f "$projectDir/settings.gradle" ]; then
  echo "Task '$task' not found in project" >&2
  exit 4
fi
echo "> Task :gradlemodelExport"
echo "launcher ` + "`basename $0`" + `"
echo "java $JAVA_HOME"
if [ -n "$FAKE_GRADLE_FAIL" ]; then
  echo "BUILD FAILED" >&2
  exit 3
fi
case "$model" in
  org.gradle.tooling.model.idea.IdeaProject)
    printf '%s' '{"model":{"name":"demo","modules":[{"name":"app","contentRoots":[{"rootDirectory":"/work/demo/app"}],"gradleProject":{"name":"app","path":":app"}}]}}' > "$output" ;;
  org.gradle.tooling.model.build.BuildEnvironment)
    printf '%s' '{"model":{"gradleVersion":"8.10","javaHome":"/jdk"}}' > "$output" ;;
  *)
    printf '{"model":{"unknownModel":"%s"}}' "$model" > "$output" ;;
esac
`

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake gradle launcher is a shell script")
	}
}

func writeExecutable(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(fakeGradle), 0o700)) //nolint:gosec // test launcher
}

func fakeInstallation(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	writeExecutable(t, filepath.Join(home, "bin", "gradle"))
	return home
}

func connect(t *testing.T, cfg domain.ConnectorConfig) *gradle.Connection {
	t.Helper()
	conn, err := gradle.NewConnector(nil).Connect(context.Background(), cfg)
	require.NoError(t, err)
	c, ok := conn.(*gradle.Connection)
	require.True(t, ok)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestConnection_IdeaProject(t *testing.T) {
	skipOnWindows(t)
	conn := connect(t, domain.ConnectorConfig{
		ProjectDir: t.TempDir(),
		Location:   domain.DirectoryLocation(fakeInstallation(t)),
		JavaHome:   "/opt/jdk",
	})

	var mu sync.Mutex
	var lines []string
	got, err := conn.Model(context.Background(), domain.ModelRequest{
		Class: domain.IdeaProjectModel,
		OnProgress: func(line string) {
			mu.Lock()
			defer mu.Unlock()
			lines = append(lines, line)
		},
	})
	require.NoError(t, err)

	project, ok := got.(domain.IdeaProject)
	require.True(t, ok)
	assert.Equal(t, "demo", project.Name)
	require.Len(t, project.Modules, 1)
	assert.Equal(t, ":app", project.Modules[0].GradleProject.Path)

	dir, ok := project.Modules[0].ModuleDir()
	assert.True(t, ok)
	assert.Equal(t, "/work/demo/app", dir)

	assert.Contains(t, lines, "> Task :gradlemodelExport")
	assert.Contains(t, lines, "java /opt/jdk")
}

func TestConnection_SubprojectDirectory(t *testing.T) {
	skipOnWindows(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "settings.gradle"), []byte("include 'app'"), domain.PrivateFilePerm))
	app := filepath.Join(root, "app")
	require.NoError(t, os.MkdirAll(app, domain.DirPerm))

	conn := connect(t, domain.ConnectorConfig{
		ProjectDir: app,
		Location:   domain.DirectoryLocation(fakeInstallation(t)),
	})

	got, err := conn.Model(context.Background(), domain.ModelRequest{Class: domain.IdeaProjectModel})
	require.NoError(t, err)
	project, ok := got.(domain.IdeaProject)
	require.True(t, ok)
	assert.Equal(t, "demo", project.Name)
}

func TestConnection_BuildEnvironment(t *testing.T) {
	skipOnWindows(t)
	conn := connect(t, domain.ConnectorConfig{
		ProjectDir: t.TempDir(),
		Location:   domain.DirectoryLocation(fakeInstallation(t)),
	})

	got, err := conn.Model(context.Background(), domain.ModelRequest{Class: domain.BuildEnvironmentModel})
	require.NoError(t, err)
	assert.Equal(t, domain.BuildEnvironment{GradleVersion: "8.10", JavaHome: "/jdk"}, got)
}

func TestConnection_UnknownModel(t *testing.T) {
	skipOnWindows(t)
	conn := connect(t, domain.ConnectorConfig{
		ProjectDir: t.TempDir(),
		Location:   domain.DirectoryLocation(fakeInstallation(t)),
	})

	// Unsupported by the init script: rejected without running gradle.
	_, err := conn.Model(context.Background(), domain.ModelRequest{Class: domain.EclipseProjectModel})
	assert.ErrorIs(t, err, domain.ErrUnknownModel)

	// Supported by the init script but refused by the build.
	_, err = conn.Model(context.Background(), domain.ModelRequest{Class: domain.GradleProjectModel})
	assert.ErrorIs(t, err, domain.ErrUnknownModel)
}

func TestConnection_BuildFailure(t *testing.T) {
	skipOnWindows(t)
	t.Setenv("FAKE_GRADLE_FAIL", "1")
	conn := connect(t, domain.ConnectorConfig{
		ProjectDir: t.TempDir(),
		Location:   domain.DirectoryLocation(fakeInstallation(t)),
	})

	_, err := conn.Model(context.Background(), domain.ModelRequest{Class: domain.IdeaProjectModel})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.False(t, errors.Is(err, domain.ErrUnknownModel))
}

func TestConnection_Close(t *testing.T) {
	skipOnWindows(t)
	conn := connect(t, domain.ConnectorConfig{
		ProjectDir: t.TempDir(),
		Location:   domain.DirectoryLocation(fakeInstallation(t)),
	})

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())

	_, err := conn.Model(context.Background(), domain.ModelRequest{Class: domain.IdeaProjectModel})
	assert.ErrorIs(t, err, domain.ErrConnectionFailed)
}

func TestConnector_DirectoryWithoutLauncher(t *testing.T) {
	_, err := gradle.NewConnector(nil).Connect(context.Background(), domain.ConnectorConfig{
		ProjectDir: t.TempDir(),
		Location:   domain.DirectoryLocation(t.TempDir()),
	})
	assert.ErrorIs(t, err, domain.ErrConnectionFailed)
}

func TestConnector_PrefersNearestWrapper(t *testing.T) {
	skipOnWindows(t)
	root := t.TempDir()
	writeExecutable(t, filepath.Join(root, "gradlew"))
	project := filepath.Join(root, "sub", "app")
	require.NoError(t, os.MkdirAll(project, domain.DirPerm))

	conn := connect(t, domain.ConnectorConfig{ProjectDir: project, Location: domain.DefaultLocation()})

	var lines []string
	_, err := conn.Model(context.Background(), domain.ModelRequest{
		Class:      domain.BuildEnvironmentModel,
		OnProgress: func(line string) { lines = append(lines, line) },
	})
	require.NoError(t, err)
	assert.Contains(t, lines, "launcher gradlew")
}

func distributionZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
		hdr.SetMode(0o755)
		w, err := zw.CreateHeader(hdr)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDistributions_Install(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	archive := distributionZip(t, map[string]string{"gradle-8.10/bin/gradle": fakeGradle})
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	dists := gradle.NewDistributions(srv.Client(), t.TempDir(), log)
	uri := srv.URL + "/gradle-8.10-bin.zip"

	home, err := dists.Install(context.Background(), uri, "")
	require.NoError(t, err)
	assert.Equal(t, "gradle-8.10", filepath.Base(home))

	info, err := os.Stat(filepath.Join(home, "bin", "gradle"))
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.NotZero(t, info.Mode().Perm()&0o100, "launcher keeps its exec bit")
	}

	again, err := dists.Install(context.Background(), uri, "")
	require.NoError(t, err)
	assert.Equal(t, home, again)
	assert.Equal(t, int32(1), hits.Load(), "installed distributions are reused")
}

func TestDistributions_UserHome(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	archive := distributionZip(t, map[string]string{"gradle-8.10/bin/gradle": fakeGradle})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	userHome := t.TempDir()
	home, err := gradle.NewDistributions(srv.Client(), t.TempDir(), log).Install(context.Background(), srv.URL+"/gradle-8.10-bin.zip", userHome)
	require.NoError(t, err)

	rel, err := filepath.Rel(userHome, home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("wrapper", "dists", "gradle-8.10-bin"), filepath.Dir(filepath.Dir(rel)))
}

func TestDistributions_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/slip.zip":
			_, _ = w.Write(distributionZip(t, map[string]string{"../evil": "x"}))
		case "/empty.zip":
			_, _ = w.Write(distributionZip(t, map[string]string{"README": "x"}))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dists := gradle.NewDistributions(srv.Client(), t.TempDir(), log)

	for _, path := range []string{"/missing.zip", "/slip.zip", "/empty.zip"} {
		t.Run(path, func(t *testing.T) {
			_, err := dists.Install(context.Background(), srv.URL+path, "")
			assert.ErrorIs(t, err, domain.ErrConnectionFailed)
		})
	}

	_, err := dists.Install(context.Background(), "ftp://example.com/gradle.zip", "")
	assert.ErrorIs(t, err, domain.ErrConnectionFailed)
}

func TestVersionURI(t *testing.T) {
	assert.Equal(t, "https://services.gradle.org/distributions/gradle-8.10-bin.zip", gradle.VersionURI("8.10"))
}

func TestUnzip_RejectsEntriesOutsideTarget(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "slip.zip")
	require.NoError(t, os.WriteFile(archive, distributionZip(t, map[string]string{"../evil": "x"}), domain.PrivateFilePerm))

	target := t.TempDir()
	err := gradle.Unzip(archive, target)
	require.ErrorIs(t, err, gradle.ErrIllegalArchiveEntry)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(target), "evil"))
	assert.True(t, os.IsNotExist(statErr))
}
