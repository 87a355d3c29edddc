// Package fs provides file system adapters for locating and fingerprinting gradle settings files.
package fs

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SettingsLocator = (*Locator)(nil)

// Locator finds the settings file that governs a project directory by walking
// up the directory tree.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the nearest settings.gradle or settings.gradle.kts at or above projectDir.
func (l *Locator) Locate(projectDir string) (string, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "dir", projectDir)
	}

	for dir := range l.ancestors(abs) {
		matches, err := doublestar.Glob(os.DirFS(dir), domain.GradleSettingsPattern, doublestar.WithFilesOnly())
		if err != nil || len(matches) == 0 {
			continue
		}
		return filepath.Join(dir, matches[0]), nil
	}

	return "", zerr.With(zerr.Wrap(domain.ErrSettingsFileNotFound, "no settings file above project"), "dir", abs)
}

// ancestors yields dir and each of its parents up to the file system root.
func (l *Locator) ancestors(dir string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(dir) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}
