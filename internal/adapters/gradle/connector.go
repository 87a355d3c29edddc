// Package gradle drives a gradle process to obtain build models.
package gradle

import (
	"context"
	_ "embed"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed init.gradle
var initScript []byte

const (
	exportTask     = "gradlemodelExport"
	modelProperty  = "gradlemodel.model"
	outputProperty = "gradlemodel.output"
)

var _ ports.ToolingConnector = (*Connector)(nil)

// Connector implements ports.ToolingConnector by launching gradle with an init
// script that serializes the requested model.
type Connector struct {
	dists *Distributions
}

// NewConnector creates a Connector installing downloaded distributions through dists.
func NewConnector(dists *Distributions) *Connector {
	return &Connector{dists: dists}
}

// Connect resolves the gradle executable for cfg and prepares a connection.
// No process is started until a model is requested.
func (c *Connector) Connect(ctx context.Context, cfg domain.ConnectorConfig) (ports.Connection, error) {
	executable, err := c.resolveExecutable(ctx, cfg)
	if err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp("", "gradlemodel-*")
	if err != nil {
		return nil, zerr.Wrap(domain.ErrConnectionFailed, "failed to create connection directory")
	}

	scriptPath := filepath.Join(workDir, "init.gradle")
	if err := os.WriteFile(scriptPath, initScript, domain.PrivateFilePerm); err != nil {
		_ = os.RemoveAll(workDir)
		return nil, zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "failed to write init script"), "path", scriptPath)
	}

	return &Connection{
		cfg:        cfg,
		executable: executable,
		workDir:    workDir,
		scriptPath: scriptPath,
	}, nil
}

func (c *Connector) resolveExecutable(ctx context.Context, cfg domain.ConnectorConfig) (string, error) {
	switch cfg.Location.Kind {
	case domain.LocationDirectory:
		return installationLauncher(cfg.Location.Dir)
	case domain.LocationVersion:
		home, err := c.dists.Install(ctx, VersionURI(cfg.Location.Version), cfg.UserHome)
		if err != nil {
			return "", err
		}
		return installationLauncher(home)
	case domain.LocationDistribution:
		home, err := c.dists.Install(ctx, cfg.Location.URI, cfg.UserHome)
		if err != nil {
			return "", err
		}
		return installationLauncher(home)
	case domain.LocationDefault:
		return defaultLauncher(cfg.ProjectDir)
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidGradleLocation, "unsupported location kind"), "kind", cfg.Location.Kind)
	}
}

// installationLauncher returns bin/gradle inside a gradle installation.
func installationLauncher(home string) (string, error) {
	launcher := filepath.Join(home, "bin", launcherName("gradle"))
	info, err := os.Stat(launcher)
	if err != nil || info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "gradle installation has no launcher"), "path", launcher)
	}
	return launcher, nil
}

// defaultLauncher prefers the nearest gradle wrapper and falls back to gradle on the PATH.
func defaultLauncher(projectDir string) (string, error) {
	wrapper := launcherName("gradlew")
	for dir := filepath.Clean(projectDir); ; {
		candidate := filepath.Join(dir, wrapper)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	path, err := exec.LookPath(launcherName("gradle"))
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "no gradle wrapper and no gradle on PATH"), "dir", projectDir)
	}
	return path, nil
}

func launcherName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".bat"
	}
	return base
}
