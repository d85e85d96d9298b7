package itimer

import (
	"sync"
)

// Registry tracks which clock kinds have a live timer. The kernel holds a
// single countdown per kind per process, so at most one Timer per kind may
// exist against the same registry at a time.
//
// Timers constructed without an explicit registry share the process-wide
// one. Tests supply private registries to stay independent of each other.
type Registry struct {
	mu   sync.Mutex
	live map[Kind]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{live: make(map[Kind]bool)}
}

// Live reports whether a timer of the given kind is currently registered.
func (r *Registry) Live(kind Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[kind]
}

// acquire claims the slot for kind. Fails with ErrAlreadyExists if a live
// timer of that kind is already registered.
func (r *Registry) acquire(kind Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live[kind] {
		return ErrAlreadyExists
	}
	r.live[kind] = true
	return nil
}

// release frees the slot for kind. Releasing an unclaimed slot is a no-op,
// so every destruction path may call it unconditionally.
func (r *Registry) release(kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.live, kind)
}

// processRegistry is the process-wide registry used by default.
var processRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return processRegistry
}
