package mutant

import (
	"fmt"
	"sync"
)

// Registry holds one factory per kind, in registration order.
type Registry struct {
	mu        sync.RWMutex
	factories map[Kind]Factory
	order     []Kind
}

// NewRegistry creates an empty factory registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]Factory)}
}

// Register adds a factory to the registry
func (r *Registry) Register(f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[f.Kind()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFactory, f.Kind())
	}
	r.factories[f.Kind()] = f
	r.order = append(r.order, f.Kind())
	return nil
}

// Get retrieves the factory for a kind
func (r *Registry) Get(k Kind) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[k]
	return f, ok
}

// All returns every factory in registration order.
func (r *Registry) All() []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Factory, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.factories[k])
	}
	return out
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Kind(nil), r.order...)
}

// DefaultRegistry holds the built-in factories: filename, cookie, query
// string and header, in that order.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, f := range []Factory{FileNameFactory{}, CookieFactory{}, QueryStringFactory{}, HeaderFactory{}} {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}
