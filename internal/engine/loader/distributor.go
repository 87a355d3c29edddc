package loader

import (
	"context"
	"maps"
	"slices"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
)

// FetchFunc requests one optional model from the build.
type FetchFunc func(ctx context.Context, class domain.ModelClass) (FetchResult, error)

// Distributor resolves extension model requests and spreads deduced data over
// the models of one build.
type Distributor struct{}

// NewDistributor creates a Distributor.
func NewDistributor() *Distributor {
	return &Distributor{}
}

// Resolve satisfies every extension's request groups, in order. Within a group
// the first class that is already available or that the build can provide wins;
// a group with no such class contributes nothing. Models fetched for one
// extension are reused by the following ones. Only hard failures are returned.
func (d *Distributor) Resolve(
	ctx context.Context,
	refs []ports.ExtensionRef,
	available domain.Lookup,
	fetch FetchFunc,
) (map[string]domain.Lookup, error) {
	r := &resolution{known: available, unavailable: make(map[domain.ModelClass]bool), fetch: fetch}

	resolved := make(map[string]domain.Lookup, len(refs))
	for _, ref := range refs {
		var entries []domain.ModelEntry
		for _, group := range ref.Extension.ModelRequests() {
			entry, ok, err := r.first(ctx, group)
			if err != nil {
				return nil, zerr.With(err, "extension", ref.ID)
			}
			if ok {
				entries = append(entries, entry)
			}
		}
		resolved[ref.ID] = domain.NewLookup(entries...)
	}
	return resolved, nil
}

type resolution struct {
	known       domain.Lookup
	unavailable map[domain.ModelClass]bool
	fetch       FetchFunc
}

func (r *resolution) first(ctx context.Context, group []domain.ModelClass) (domain.ModelEntry, bool, error) {
	for _, class := range group {
		if v, ok := r.known.Get(class); ok {
			return domain.ModelEntry{Class: class, Value: v}, true, nil
		}
		if r.unavailable[class] || r.fetch == nil {
			continue
		}
		res, err := r.fetch(ctx, class)
		if err != nil {
			return domain.ModelEntry{}, false, err
		}
		if res.Status == FetchNotApplicable {
			r.unavailable[class] = true
			continue
		}
		r.known = r.known.With(res.Entry)
		return res.Entry, true, nil
	}
	return domain.ModelEntry{}, false, nil
}

// Deduce stores each extension's resolved data on main and hands the data the
// extension derives for other directories to the matching known models.
// Data derived for main's own directory is merged into its entry; data for
// unknown directories is dropped.
func (d *Distributor) Deduce(
	refs []ports.ExtensionRef,
	resolved map[string]domain.Lookup,
	main *domain.Model,
	known map[string]*domain.Model,
) {
	for _, ref := range refs {
		root, ok := resolved[ref.ID]
		if !ok {
			continue
		}
		deduced := ref.Extension.DeduceModelsForProjects(root)

		if own, ok := deduced[main.ProjectDir()]; ok {
			root = domain.NewLookup(append(root.Entries(), own.Entries()...)...)
		}
		main.SetExtensionModels(ref.ID, root)

		for _, dir := range slices.Sorted(maps.Keys(deduced)) {
			if dir == main.ProjectDir() {
				continue
			}
			if m, ok := known[dir]; ok {
				m.SetExtensionModels(ref.ID, deduced[dir])
			}
		}
	}
}
