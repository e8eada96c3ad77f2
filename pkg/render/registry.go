package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrRendererNotFound is returned when no front-end is registered under a name.
var ErrRendererNotFound = errors.New("render: renderer not found")

// Registry holds the form front-ends (terminal, html) keyed by Name().
type Registry struct {
	mu       sync.RWMutex
	frontEnd map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{frontEnd: make(map[string]Renderer)}
}

// Register adds a front-end. Empty and duplicate names are rejected.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.frontEnd[name]; taken {
		return fmt.Errorf("render: front-end %q already registered", name)
	}
	r.frontEnd[name] = renderer
	return nil
}

func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the front-end for name, wrapping ErrRendererNotFound.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.frontEnd[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

func (r *Registry) MustGet(name string) Renderer {
	renderer, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return renderer
}

// List returns front-end names in sorted order; the first is the fallback
// when a form is rendered without an explicit target.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.frontEnd))
	for name := range r.frontEnd {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.frontEnd[name]
	return ok
}
