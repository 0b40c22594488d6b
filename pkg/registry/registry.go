package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/aretw0/drills/pkg/domain"
)

// Func is the entry point of a script.
type Func func(ctx context.Context, in domain.Input) error

// Script describes one registered entry point.
type Script struct {
	Name  string
	Group string
	Usage string // positional arguments, e.g. "<url> <file>"
	Short string
	// Files marks scripts that read or write the local file system.
	Files bool
	Run   Func
}

// Registry manages the available scripts.
type Registry struct {
	mu      sync.RWMutex
	scripts map[string]Script
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		scripts: make(map[string]Script),
	}
}

// Register adds a script to the registry.
// If a script with the same name exists, it is overwritten.
func (r *Registry) Register(s Script) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scripts[s.Name] = s
}

// Get looks up a script by name.
func (r *Registry) Get(name string) (Script, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scripts[name]
	return s, ok
}

// List returns every script ordered by group, then name.
func (r *Registry) List() []Script {
	r.mu.RLock()
	out := make([]Script, 0, len(r.scripts))
	for _, s := range r.scripts {
		out = append(out, s)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Script) int {
		if c := strings.Compare(a.Group, b.Group); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Execute looks up a script by name and runs it.
// Returns an error wrapping domain.ErrUnknownScript if it is not found.
func (r *Registry) Execute(ctx context.Context, name string, in domain.Input) error {
	s, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownScript, name)
	}
	return s.Run(ctx, in)
}
