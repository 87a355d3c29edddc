package loader

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

const jreDirName = "jre"

// ScriptJavaHome returns the java home to run build scripts with. A path ending
// in a jre directory is replaced by its parent.
func ScriptJavaHome(dir string) string {
	if dir == "" {
		return ""
	}
	clean := filepath.Clean(dir)
	if strings.EqualFold(filepath.Base(clean), jreDirName) {
		return filepath.Dir(clean)
	}
	return clean
}

// ConnectorConfigFor combines global settings with the project's own properties.
// When the project properties are not available the global gradle location is
// used and a warning is logged.
func ConnectorConfigFor(project ports.Project, settings domain.Settings, logger ports.Logger) domain.ConnectorConfig {
	cfg := domain.ConnectorConfig{
		ProjectDir: filepath.Clean(project.Directory()),
		Location:   settings.GradleHome,
		UserHome:   settings.GradleUserHome,
		JVMArgs:    slices.Clone(settings.JVMArgs),
		JavaHome:   ScriptJavaHome(settings.ScriptJavaHome),
	}

	props, ok := project.Properties()
	if !ok {
		logger.Warn(fmt.Sprintf("properties of %s are not available, using global gradle settings", cfg.ProjectDir))
		return cfg
	}

	if !props.GradleLocation.IsDefault() {
		cfg.Location = props.GradleLocation
	}
	if props.ScriptJavaHome != "" {
		cfg.JavaHome = ScriptJavaHome(props.ScriptJavaHome)
	}
	return cfg
}
