package domain

import "path/filepath"

// Settings is the global configuration of the model loader.
type Settings struct {
	GradleHome       GradleLocation
	GradleUserHome   string
	JVMArgs          []string
	ScriptJavaHome   string
	ProjectCacheSize int
	LogLevel         string
	SnapshotDir      string
	Projects         map[string]ProjectProperties
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		GradleHome:       DefaultLocation(),
		ProjectCacheSize: DefaultProjectCacheSize,
		LogLevel:         "info",
		SnapshotDir:      DefaultSnapshotPath(),
	}
}

// ProjectProperties holds per-project overrides.
type ProjectProperties struct {
	GradleLocation GradleLocation
	ScriptJavaHome string
}

// PropertiesFor returns the overrides configured for dir, if any.
func (s Settings) PropertiesFor(dir string) (ProjectProperties, bool) {
	if len(s.Projects) == 0 {
		return ProjectProperties{}, false
	}
	p, ok := s.Projects[filepath.Clean(dir)]
	return p, ok
}

// ConnectorConfig is everything needed to open one connection to the build tool.
type ConnectorConfig struct {
	ProjectDir string
	Location   GradleLocation
	UserHome   string
	JVMArgs    []string
	JavaHome   string
}

// ModelRequest asks an open connection for one model.
type ModelRequest struct {
	Class      ModelClass
	JavaHome   string
	JVMArgs    []string
	OnProgress func(text string)
}
