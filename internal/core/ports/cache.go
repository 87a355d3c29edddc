package ports

import "go.trai.ch/gradlemodel/internal/core/domain"

// ModelCache keeps recently loaded models in memory.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ModelCache interface {
	// TryGet returns the model for dir if it was stored with a matching
	// fingerprint and has not been marked dirty.
	TryGet(dir string, fingerprint domain.Fingerprint) (*domain.Model, bool)

	// Put stores a model, evicting the least recently used entries when full.
	Put(model *domain.Model)

	// SetMaxCapacity changes the capacity and evicts any excess immediately.
	SetMaxCapacity(n int)
}

// ModelLoadListener is notified whenever a model is put into the cache.
type ModelLoadListener interface {
	OnModelLoaded(model *domain.Model)
}
