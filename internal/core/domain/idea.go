package domain

// IdeaModuleModel is the model class under which a single module is stored in a Model's main lookup.
const IdeaModuleModel ModelClass = "org.gradle.tooling.model.idea.IdeaModule"

// IdeaProject is the raw module graph reported by the build tool.
type IdeaProject struct {
	Name    string       `json:"name"`
	Modules []IdeaModule `json:"modules"`
}

// IdeaModule is one module of an IdeaProject.
type IdeaModule struct {
	Name          string            `json:"name"`
	ContentRoots  []IdeaContentRoot `json:"contentRoots"`
	GradleProject GradleProject     `json:"gradleProject"`
}

// IdeaContentRoot describes a directory tree owned by a module.
type IdeaContentRoot struct {
	RootDirectory     string   `json:"rootDirectory"`
	SourceDirectories []string `json:"sourceDirectories,omitempty"`
	TestDirectories   []string `json:"testDirectories,omitempty"`
}

// GradleProject is the gradle identity of a module.
// Children holds gradle paths, not nested objects.
type GradleProject struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Children []string `json:"children,omitempty"`
}

// ModuleDir returns the first content root directory of the module.
func (m IdeaModule) ModuleDir() (string, bool) {
	if len(m.ContentRoots) == 0 || m.ContentRoots[0].RootDirectory == "" {
		return "", false
	}
	return m.ContentRoots[0].RootDirectory, true
}

// BuildEnvironment describes the gradle and java runtime a build uses.
type BuildEnvironment struct {
	GradleVersion string   `json:"gradleVersion"`
	JavaHome      string   `json:"javaHome"`
	JVMArguments  []string `json:"jvmArguments,omitempty"`
}
