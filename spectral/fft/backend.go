package fft

import (
	"sync"

	"vv-dsp/core"
)

// registry is the process-wide backend vtable. spec.md §5/§9: "set/get
// backend serialize on a mutex; execute does not take this lock" — once a
// Plan has resolved its backend at MakePlan time, Execute never touches
// the registry again.
var registry = struct {
	mu      sync.RWMutex
	active  BackendID
	backend map[BackendID]backend
}{
	active: BackendReference,
	backend: map[BackendID]backend{
		BackendReference: referenceBackend{},
		BackendGonum:      gonumBackend{},
	},
}

// SetDefaultBackend changes the backend MakePlan uses when the caller
// does not pin one explicitly via WithBackend. Returns Unsupported if id
// is unknown or not available on this build.
func SetDefaultBackend(id BackendID) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	b, ok := registry.backend[id]
	if !ok || !b.available() {
		return core.NewError("fft.SetDefaultBackend", core.Unsupported, nil)
	}
	registry.active = id
	return nil
}

// DefaultBackend reports the backend MakePlan currently resolves to
// absent an explicit WithBackend option.
func DefaultBackend() BackendID {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.active
}

// IsBackendAvailable reports whether id is a recognized, linked-in
// backend on this build.
func IsBackendAvailable(id BackendID) bool {
	registry.mu.RLock()
	b, ok := registry.backend[id]
	registry.mu.RUnlock()
	return ok && b.available()
}

func resolveBackend(id BackendID) (backend, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	b, ok := registry.backend[id]
	if !ok || !b.available() {
		return nil, core.NewError("fft.resolveBackend", core.Unsupported, nil)
	}
	return b, nil
}

func defaultBackendLocked() BackendID {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.active
}
