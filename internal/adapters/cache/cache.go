// Package cache implements the in-memory model cache.
package cache

import (
	"container/list"
	"fmt"
	"path/filepath"
	"sync"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
)

var _ ports.ModelCache = (*ModelCache)(nil)

// ModelCache is a least-recently-used cache of models keyed by project directory.
// An entry is only served while the caller's settings fingerprint matches the
// one recorded in the model and the model is not dirty.
type ModelCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front is most recently used
	items    map[string]*list.Element
}

// New creates a cache holding at most capacity models. Capacities below 1 are clamped to 1.
func New(capacity int) *ModelCache {
	return &ModelCache{
		capacity: clamp(capacity),
		order:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// TryGet returns the model for dir if it is still valid for fingerprint.
// Stale and dirty entries are dropped.
func (c *ModelCache) TryGet(dir string, fingerprint domain.Fingerprint) (*domain.Model, bool) {
	dir = filepath.Clean(dir)

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[dir]
	if !ok {
		return nil, false
	}

	model, _ := elem.Value.(*domain.Model)
	if model.IsDirty() || !model.Fingerprint().Matches(fingerprint) {
		c.removeElement(elem)
		return nil, false
	}

	c.order.MoveToFront(elem)
	return model, true
}

// Put stores model, replacing any entry for the same directory.
func (c *ModelCache) Put(model *domain.Model) {
	if model == nil {
		return
	}
	dir := filepath.Clean(model.ProjectDir())

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[dir]; ok {
		elem.Value = model
		c.order.MoveToFront(elem)
		return
	}

	c.items[dir] = c.order.PushFront(model)
	c.evict()
}

// SetMaxCapacity changes the capacity and evicts excess entries immediately.
func (c *ModelCache) SetMaxCapacity(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = clamp(n)
	c.evict()
}

// Len returns the number of cached models.
func (c *ModelCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the current capacity.
func (c *ModelCache) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

// evict must be called with mu held.
func (c *ModelCache) evict() {
	for c.order.Len() > c.capacity {
		c.removeElement(c.order.Back())
	}
}

func (c *ModelCache) removeElement(elem *list.Element) {
	model, _ := c.order.Remove(elem).(*domain.Model)
	delete(c.items, filepath.Clean(model.ProjectDir()))
}

func clamp(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Follow keeps the capacity of c in line with the project_cache_size setting.
func Follow(c *ModelCache, src ports.SettingsSource, logger ports.Logger) {
	src.OnChange(func(s domain.Settings) {
		c.SetMaxCapacity(s.ProjectCacheSize)
		logger.Debug(fmt.Sprintf("model cache holds %d of %d projects", c.Len(), c.Capacity()))
	})
}
