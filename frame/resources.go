package frame

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

type resourceEntry struct {
	typ   reflect.Type
	value reflect.Value
	ptr   unsafe.Pointer
}

// Resources holds at most one value per Go type. Values live for the lifetime of
// the store and their addresses never change, so pointers handed out by Lookup
// and Resource.Get stay valid.
type Resources struct {
	ids     map[reflect.Type]uint32
	entries *intmap.Map[uint32, *resourceEntry]
	nextId  uint32
}

// NewResources creates an empty store.
func NewResources() *Resources {
	return &Resources{
		ids:     make(map[reflect.Type]uint32),
		entries: intmap.New[uint32, *resourceEntry](16),
		nextId:  1,
	}
}

func (r *Resources) entry(t reflect.Type) *resourceEntry {
	id, ok := r.ids[t]
	if !ok {
		return nil
	}
	entry, _ := r.entries.Get(id)
	return entry
}

// Insert stores value under its dynamic type, replacing the contents of any
// existing value of that type in place.
func (r *Resources) Insert(value any) {
	t := reflect.TypeOf(value)
	if t == nil {
		panic("frame: cannot insert untyped nil resource")
	}

	if entry := r.entry(t); entry != nil {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	v := reflect.New(t)
	v.Elem().Set(reflect.ValueOf(value))

	id := r.nextId
	r.nextId++
	r.ids[t] = id
	r.entries.Put(id, &resourceEntry{
		typ:   t,
		value: v,
		ptr:   v.UnsafePointer(),
	})
}

// Read sets *target to the stored value of type T and reports whether it exists.
func (r *Resources) Read(target any) bool {
	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Ptr || tv.Elem().Kind() != reflect.Ptr {
		panic("frame: Read target must be a pointer to a pointer")
	}

	entry := r.entry(tv.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	tv.Elem().Set(entry.value)
	return true
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return r.entries.Len()
}

// TypeNames returns the stored resource type names in sorted order.
func (r *Resources) TypeNames() []string {
	names := make([]string, 0, r.entries.Len())
	r.entries.ForEach(func(_ uint32, entry *resourceEntry) bool {
		names = append(names, entry.typ.String())
		return true
	})
	sort.Strings(names)
	return names
}

// Lookup returns the stored value of type T, or nil if none was inserted.
func Lookup[T any](r *Resources) *T {
	entry := r.entry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return (*T)(entry.ptr)
}
