package registry

import (
	"fmt"
	"sync"
)

// Key names a service and fixes its type, e.g. Key[form.Validator]("manual.validator").
type Key[T any] string

// Registry is where form variants publish their validators during Register
// and pick them up again during Boot. The CLI reads it the same way.
type Registry struct {
	services sync.Map
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Set stores value under key, replacing any earlier value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Get returns the value stored under key. A value of a different type
// reports false.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	var zero T
	val, ok := r.services.Load(string(key))
	if !ok {
		return zero, false
	}
	result, ok := val.(T)
	if !ok {
		return zero, false
	}
	return result, true
}

// MustGet is Get for values a module registered itself; a miss is a wiring bug.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("registry: nothing registered under %q", string(key)))
	}
	return val
}
