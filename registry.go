package microorm

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry holds one Adapter per mapped type. Adapters are usually built once at
// startup and shared; the registry is safe for concurrent use.
type Registry struct {
	adapters sync.Map // map[reflect.Type]any, each value an *Adapter[T]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Register stores a for T unless an adapter is already registered, and returns the
// adapter in effect.
func Register[T any](r *Registry, a *Adapter[T]) *Adapter[T] {
	actual, _ := r.adapters.LoadOrStore(reflect.TypeFor[T](), a)
	return actual.(*Adapter[T])
}

// Lookup returns the adapter registered for T.
func Lookup[T any](r *Registry) (*Adapter[T], bool) {
	v, ok := r.adapters.Load(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	return v.(*Adapter[T]), true
}

// MustLookup is like Lookup but panics when T has no adapter.
func MustLookup[T any](r *Registry) *Adapter[T] {
	a, ok := Lookup[T](r)
	if !ok {
		panic(fmt.Sprintf("microorm: no adapter registered for %s", reflect.TypeFor[T]()))
	}
	return a
}

// LoadOrBuild returns the adapter for T, registering the one returned by build when
// none is present. build may run more than once under contention; only one result is
// kept.
func LoadOrBuild[T any](r *Registry, build func() *Adapter[T]) *Adapter[T] {
	if a, ok := Lookup[T](r); ok {
		return a
	}
	return Register(r, build())
}
