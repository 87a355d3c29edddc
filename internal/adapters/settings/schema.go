package settings

// File represents the structure of the gradlemodel.yaml settings file.
type File struct {
	GradleHome       string                `yaml:"gradle_home"`
	GradleUserHome   string                `yaml:"gradle_user_home"`
	JVMArgs          []string              `yaml:"jvm_args"`
	ScriptJavaHome   string                `yaml:"script_java_home"`
	ProjectCacheSize *int                  `yaml:"project_cache_size"`
	LogLevel         string                `yaml:"log_level"`
	SnapshotDir      string                `yaml:"snapshot_dir"`
	Projects         map[string]ProjectDTO `yaml:"projects"`
}

// ProjectDTO represents per-project overrides in the settings file.
type ProjectDTO struct {
	GradleLocation string `yaml:"gradle_location"`
	ScriptJavaHome string `yaml:"script_java_home"`
}
