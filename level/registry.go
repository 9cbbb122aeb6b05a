package level

import (
	"sync"

	"github.com/elliotchance/orderedmap/v2"
)

// Registry holds loaded levels by name, preserving load order so "the first
// level" stays well defined across reloads.
type Registry struct {
	mu     sync.Mutex
	levels *orderedmap.OrderedMap[string, *Level]
}

// NewRegistry returns an empty level registry.
func NewRegistry() *Registry {
	return &Registry{levels: orderedmap.NewOrderedMap[string, *Level]()}
}

// Put inserts or replaces the given level under its name.
func (r *Registry) Put(l *Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.levels.Set(l.Name, l)
}

// Get returns the level with the given name.
func (r *Registry) Get(name string) (*Level, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levels.Get(name)
}

// First returns the level loaded earliest, or nil if the registry is empty.
func (r *Registry) First() *Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	front := r.levels.Front()
	if front == nil {
		return nil
	}
	return front.Value
}

// Names returns the level names in load order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levels.Keys()
}

// Len returns the number of loaded levels.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.levels.Len()
}
