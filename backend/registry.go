package backend

import (
	"fmt"
	"sort"

	"github.com/gogpu/gpucontext"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() PresentationBackend

// registry holds registered backends.
// Priority order for backend selection (first available wins):
// Native > Software (Software is the fallback).
var registry = gpucontext.NewRegistry[PresentationBackend](
	gpucontext.WithPriority(BackendNative, BackendSoftware),
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory BackendFactory) {
	registry.Register(name, factory)
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	names := registry.Available()
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Get returns a new backend instance by name.
// Returns nil if the backend is not registered.
func Get(name string) PresentationBackend {
	return registry.Get(name)
}

// DefaultName returns the name of the backend Default would return.
func DefaultName() string {
	return registry.BestName()
}

// Default returns the best available backend based on priority.
// Returns nil if no backends are registered.
func Default() PresentationBackend {
	return registry.Best()
}

// Open returns the named backend, initialized. An empty name selects the
// default backend.
func Open(name string) (PresentationBackend, error) {
	var b PresentationBackend
	if name == "" {
		b = Default()
	} else {
		b = Get(name)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	if err := b.Init(); err != nil {
		return nil, fmt.Errorf("backend %s: %w", b.Name(), err)
	}
	return b, nil
}

// MustOpen is like Open but panics on error.
func MustOpen(name string) PresentationBackend {
	b, err := Open(name)
	if err != nil {
		panic(err)
	}
	return b
}
