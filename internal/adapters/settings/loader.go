// Package settings provides the yaml backed, live reloading settings source.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Load reads the settings file at path. A missing file yields the defaults.
func Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	return Parse(data)
}

// Parse converts the content of a settings file into domain settings.
func Parse(data []byte) (domain.Settings, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	s := domain.DefaultSettings()

	home, err := domain.ParseGradleLocation(file.GradleHome)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "key", "gradle_home")
	}
	s.GradleHome = home
	s.GradleUserHome = expandHome(file.GradleUserHome)
	s.JVMArgs = file.JVMArgs
	s.ScriptJavaHome = expandHome(file.ScriptJavaHome)

	if file.ProjectCacheSize != nil {
		s.ProjectCacheSize = *file.ProjectCacheSize
	}
	if file.LogLevel != "" {
		s.LogLevel = strings.ToLower(file.LogLevel)
	}
	if file.SnapshotDir != "" {
		s.SnapshotDir = expandHome(file.SnapshotDir)
	}

	if len(file.Projects) > 0 {
		s.Projects = make(map[string]domain.ProjectProperties, len(file.Projects))
		for dir, dto := range file.Projects {
			loc, err := domain.ParseGradleLocation(dto.GradleLocation)
			if err != nil {
				return domain.Settings{}, zerr.With(err, "project", dir)
			}
			s.Projects[filepath.Clean(expandHome(dir))] = domain.ProjectProperties{
				GradleLocation: loc,
				ScriptJavaHome: expandHome(dto.ScriptJavaHome),
			}
		}
	}

	return s, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
