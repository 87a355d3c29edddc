package domain

import (
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
)

// Model is the loaded representation of one project directory.
//
// The project tree and main models are fixed at creation. Extension data is
// filled in while the owning fetch runs; afterwards the dirty flag is the only
// state that changes.
type Model struct {
	projectDir  string
	info        *ProjectInfo
	mainModels  Lookup
	fingerprint Fingerprint

	dirty atomic.Bool

	mu         sync.RWMutex
	extensions map[string]Lookup
}

// NewModel creates a model for the root of info.
func NewModel(info *ProjectInfo, mainModels Lookup, fingerprint Fingerprint) *Model {
	return &Model{
		projectDir:  info.Dir(),
		info:        info,
		mainModels:  mainModels,
		fingerprint: fingerprint,
		extensions:  make(map[string]Lookup),
	}
}

// NewEmptyModel creates a placeholder model with a single node tree and no data.
func NewEmptyModel(dir string) *Model {
	return NewModel(NewEmptyProjectInfo(dir), EmptyLookup(), Fingerprint{})
}

// ProjectDir returns the directory the model was loaded for.
func (m *Model) ProjectDir() string { return m.projectDir }

// ProjectInfo returns the project tree rooted at this model's project.
func (m *Model) ProjectInfo() *ProjectInfo { return m.info }

// MainModels returns the models produced by the primary fetch.
func (m *Model) MainModels() Lookup { return m.mainModels }

// Fingerprint returns the settings fingerprint recorded when the model was loaded.
func (m *Model) Fingerprint() Fingerprint { return m.fingerprint }

// RootProjectDir returns the directory of the gradle build the project belongs to.
// It is the directory of the settings file when known, otherwise the project directory.
func (m *Model) RootProjectDir() string {
	if m.fingerprint.Path != "" {
		return filepath.Dir(m.fingerprint.Path)
	}
	return m.projectDir
}

// MarkDirty flags the model as outdated. Dirty models are never served from the cache.
func (m *Model) MarkDirty() { m.dirty.Store(true) }

// IsDirty reports whether MarkDirty was called.
func (m *Model) IsDirty() bool { return m.dirty.Load() }

// ExtensionModels returns the data stored for an extension.
func (m *Model) ExtensionModels(extensionID string) (Lookup, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.extensions[extensionID]
	return l, ok
}

// SetExtensionModels stores data for an extension. An extension gets at most one
// entry; later calls for the same id are ignored and report false.
func (m *Model) SetExtensionModels(extensionID string, l Lookup) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.extensions[extensionID]; ok {
		return false
	}
	m.extensions[extensionID] = l
	return true
}

// ExtensionIDs returns the ids that have data, sorted.
func (m *Model) ExtensionIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.extensions))
}

// UnloadedExtensions returns the ids, in order, that have no data yet.
func (m *Model) UnloadedExtensions(ids []string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var missing []string
	for _, id := range ids {
		if _, ok := m.extensions[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// HasUnloadedExtensions reports whether any of ids has no data yet.
func (m *Model) HasUnloadedExtensions(ids []string) bool {
	return len(m.UnloadedExtensions(ids)) > 0
}

// AllModels returns the main models followed by every extension's models.
// Extension order is unspecified.
func (m *Model) AllModels() Lookup {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := m.mainModels.Entries()
	for _, l := range m.extensions {
		entries = append(entries, l.entries...)
	}
	return Lookup{entries: entries}
}
