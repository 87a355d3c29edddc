// Package extension provides the built-in model extensions.
package extension

import (
	"slices"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

const (
	// JavaSourcesID is the id under which java source data is stored in a model.
	JavaSourcesID = "java-sources"

	// JavaSourcesModel is the class of the per-project JavaSources entry.
	JavaSourcesModel domain.ModelClass = "gradlemodel.JavaSources"
)

// JavaSources lists the named source and test roots of one project.
type JavaSources struct {
	ProjectDir string              `json:"projectDir"`
	Sources    []domain.SourceRoot `json:"sources"`
	Tests      []domain.SourceRoot `json:"tests"`
	JavaHome   string              `json:"javaHome,omitempty"`
}

var _ ports.Extension = JavaSourcesExtension{}

// JavaSourcesExtension splits the idea module graph into per-project source roots.
type JavaSourcesExtension struct{}

// Name implements ports.Extension.
func (JavaSourcesExtension) Name() string { return "java sources" }

// ModelRequests implements ports.Extension.
// The eclipse model is preferred for the runtime group when the build offers it.
func (JavaSourcesExtension) ModelRequests() [][]domain.ModelClass {
	return [][]domain.ModelClass{
		{domain.IdeaProjectModel},
		{domain.EclipseProjectModel, domain.BuildEnvironmentModel},
	}
}

// DeduceModelsForProjects implements ports.Extension.
func (JavaSourcesExtension) DeduceModelsForProjects(resolved domain.Lookup) map[string]domain.Lookup {
	project, ok := domain.LookupValue[domain.IdeaProject](resolved)
	if !ok {
		return nil
	}
	env, _ := domain.LookupValue[domain.BuildEnvironment](resolved)

	result := make(map[string]domain.Lookup, len(project.Modules))
	for _, module := range project.Modules {
		dir, ok := module.ModuleDir()
		if !ok {
			continue
		}
		var sources, tests []string
		for _, root := range module.ContentRoots {
			sources = append(sources, root.SourceDirectories...)
			tests = append(tests, root.TestDirectories...)
		}
		result[dir] = domain.NewLookup(domain.ModelEntry{
			Class: JavaSourcesModel,
			Value: JavaSources{
				ProjectDir: dir,
				Sources:    domain.NameSourceRoots(slices.Compact(sources)),
				Tests:      domain.NameSourceRoots(slices.Compact(tests)),
				JavaHome:   env.JavaHome,
			},
		})
	}
	return result
}

// Registry holds the extensions active for every project.
type Registry struct {
	refs []ports.ExtensionRef
}

// NewRegistry creates a registry of the given extensions.
func NewRegistry(refs ...ports.ExtensionRef) *Registry {
	return &Registry{refs: slices.Clone(refs)}
}

// Builtin returns a registry containing the built-in extensions.
func Builtin() *Registry {
	return NewRegistry(ports.ExtensionRef{ID: JavaSourcesID, Extension: JavaSourcesExtension{}})
}

// Refs returns the registered extensions in order.
func (r *Registry) Refs() []ports.ExtensionRef {
	return slices.Clone(r.refs)
}
