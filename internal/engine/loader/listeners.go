package loader

import (
	"slices"
	"sync"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

// Listeners is a registry of model load listeners. Listeners may be added or
// removed while a notification is in progress; the change applies to the next one.
type Listeners struct {
	mu   sync.Mutex
	list []ports.ModelLoadListener
}

// Add registers l.
func (r *Listeners) Add(l ports.ModelLoadListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, l)
}

// Remove unregisters the first registration of l.
func (r *Listeners) Remove(l ports.ModelLoadListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.Index(r.list, l); i >= 0 {
		r.list = slices.Delete(r.list, i, i+1)
	}
}

// Fire notifies every listener registered at the time of the call.
func (r *Listeners) Fire(model *domain.Model) {
	r.mu.Lock()
	snapshot := slices.Clone(r.list)
	r.mu.Unlock()

	for _, l := range snapshot {
		l.OnModelLoaded(model)
	}
}
