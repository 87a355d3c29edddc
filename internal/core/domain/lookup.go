package domain

// ModelClass names a model type that can be requested from the build tool,
// for example "org.gradle.tooling.model.idea.IdeaProject".
type ModelClass string

const (
	// IdeaProjectModel is the primary module-tree model.
	IdeaProjectModel ModelClass = "org.gradle.tooling.model.idea.IdeaProject"
	// GradleProjectModel is the gradle project hierarchy model.
	GradleProjectModel ModelClass = "org.gradle.tooling.model.GradleProject"
	// BuildEnvironmentModel describes the gradle and java versions used by the build.
	BuildEnvironmentModel ModelClass = "org.gradle.tooling.model.build.BuildEnvironment"
	// EclipseProjectModel is the eclipse flavoured project model.
	EclipseProjectModel ModelClass = "org.gradle.tooling.model.eclipse.EclipseProject"
)

// ModelEntry is one value stored in a Lookup.
type ModelEntry struct {
	Class ModelClass
	Value any
}

// Lookup is an ordered, immutable bag of model values addressed by class.
type Lookup struct {
	entries []ModelEntry
}

// NewLookup creates a lookup from the given entries. The slice is copied.
func NewLookup(entries ...ModelEntry) Lookup {
	if len(entries) == 0 {
		return Lookup{}
	}
	cp := make([]ModelEntry, len(entries))
	copy(cp, entries)
	return Lookup{entries: cp}
}

// EmptyLookup returns a lookup without entries.
func EmptyLookup() Lookup {
	return Lookup{}
}

// Get returns the first value registered for class.
func (l Lookup) Get(class ModelClass) (any, bool) {
	for _, e := range l.entries {
		if e.Class == class {
			return e.Value, true
		}
	}
	return nil, false
}

// Entries returns a copy of all entries in insertion order.
func (l Lookup) Entries() []ModelEntry {
	cp := make([]ModelEntry, len(l.entries))
	copy(cp, l.entries)
	return cp
}

// Len returns the number of entries.
func (l Lookup) Len() int {
	return len(l.entries)
}

// With returns a new lookup with the entry appended.
func (l Lookup) With(e ModelEntry) Lookup {
	cp := make([]ModelEntry, len(l.entries), len(l.entries)+1)
	copy(cp, l.entries)
	return Lookup{entries: append(cp, e)}
}

// LookupValue returns the first value in l of type T.
func LookupValue[T any](l Lookup) (T, bool) {
	for _, e := range l.entries {
		if v, ok := e.Value.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
