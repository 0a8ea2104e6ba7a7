package frame

import (
	"reflect"
	"unsafe"
)

// Resource is a cached accessor to a single value in Resources. Declare it as a
// field on a System and the Scheduler initializes it during Register.
type Resource[T any] struct {
	resources *Resources
	ptr       unsafe.Pointer
}

// Provide returns an accessor for T, creating the value from initializer (or the
// zero value) if the store does not hold one yet.
func Provide[T any](resources *Resources, initializer ...T) *Resource[T] {
	if resources.entry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		resources.Insert(value)
	}

	res := &Resource[T]{}
	res.Init(resources)
	return res
}

// Init binds the accessor to a store. Called by the Scheduler for system fields.
func (r *Resource[T]) Init(resources *Resources) {
	r.resources = resources
	r.ptr = nil
	r.refresh()
}

func (r *Resource[T]) refresh() {
	if r.resources == nil {
		return
	}
	if entry := r.resources.entry(reflect.TypeFor[T]()); entry != nil {
		r.ptr = entry.ptr
	}
}

// Get returns the stored value, or nil if it has not been inserted.
func (r *Resource[T]) Get() *T {
	if r.ptr == nil {
		r.refresh()
	}
	if r.ptr == nil {
		return nil
	}
	return (*T)(r.ptr)
}

// Exists reports whether the value has been inserted.
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}
