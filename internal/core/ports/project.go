package ports

import "go.trai.ch/gradlemodel/internal/core/domain"

// Extension is a pluggable consumer of build models.
//
//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type Extension interface {
	// Name returns a human readable name used in logs.
	Name() string

	// ModelRequests returns groups of alternative model classes. In each group
	// the first class the build can provide is used and the rest are skipped.
	ModelRequests() [][]domain.ModelClass

	// DeduceModelsForProjects derives data for other projects of the same build
	// from the data resolved for the root query. Keys are project directories.
	DeduceModelsForProjects(resolved domain.Lookup) map[string]domain.Lookup
}

// ExtensionRef binds an extension to the identity its data is stored under.
type ExtensionRef struct {
	ID        string
	Extension Extension
}

// ExtensionIDs returns the ids of refs in order.
func ExtensionIDs(refs []ExtensionRef) []string {
	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	return ids
}

// Project is a gradle project the loader can fetch models for.
type Project interface {
	// Directory returns the absolute project directory.
	Directory() string

	// DisplayName returns the name shown in progress captions.
	DisplayName() string

	// Properties returns the project's gradle properties. The second result is
	// false when they are not available yet.
	Properties() (domain.ProjectProperties, bool)

	// Extensions returns the extensions active for the project, in order.
	Extensions() []ExtensionRef
}
