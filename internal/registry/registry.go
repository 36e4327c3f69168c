package registry

import (
	"slices"
)

// Module is the interface that all output modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered renderers for a single application instance.
type Registry struct {
	renderers map[string]*RegisteredRenderer
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		renderers: make(map[string]*RegisteredRenderer),
	}
}

// Lookup returns the renderer registered under name.
func (r *Registry) Lookup(name string) (*RegisteredRenderer, bool) {
	h, ok := r.renderers[name]
	return h, ok
}

// Names returns the registered renderer names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
