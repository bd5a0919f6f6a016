// Package field stores named numeric arrays over a single index domain, such
// as the cells or the faces of a grid.
package field

import "fmt"

// ID identifies a field within one Registry. IDs equal the registration order
// and stay valid until the registry is reset.
type ID int

type entry struct {
	name       string
	components int
	data       []float64
}

// Registry is an append-only store of fixed-length float64 arrays, each sized
// to the registry's domain times the field's component count.
type Registry struct {
	size   int
	fields []entry
}

// New returns an empty registry over a domain of the given size.
func New(size int) *Registry {
	r := &Registry{}
	r.Reset(size)
	return r
}

// Reset drops every registered field and sets a new domain size. IDs handed
// out afterwards start at zero again.
func (r *Registry) Reset(size int) {
	if size < 0 {
		size = 0
	}
	r.size = size
	r.fields = nil
}

// Register appends a field with size*components elements, all set to
// initial, and returns its id. Names are not required to be unique.
func (r *Registry) Register(name string, components int, initial float64) ID {
	if components <= 0 {
		panic(fmt.Sprintf("field: %q registered with %d components", name, components))
	}
	data := make([]float64, r.size*components)
	if initial != 0 {
		for i := range data {
			data[i] = initial
		}
	}
	r.fields = append(r.fields, entry{name: name, components: components, data: data})
	return ID(len(r.fields) - 1)
}

// Get returns the live backing array of a field.
func (r *Registry) Get(id ID) []float64 { return r.fields[id].data }

// Name returns the name a field was registered under.
func (r *Registry) Name(id ID) string { return r.fields[id].name }

// Components returns the number of values stored per domain element.
func (r *Registry) Components(id ID) int { return r.fields[id].components }

// Size reports the domain size.
func (r *Registry) Size() int { return r.size }

// Len reports how many fields are registered.
func (r *Registry) Len() int { return len(r.fields) }

// Names lists field names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.name
	}
	return names
}

// Lookup returns the first field registered under name.
func (r *Registry) Lookup(name string) (ID, bool) {
	for i, f := range r.fields {
		if f.name == name {
			return ID(i), true
		}
	}
	return 0, false
}

// Clone returns a deep copy that preserves every id.
func (r *Registry) Clone() *Registry {
	out := &Registry{size: r.size, fields: make([]entry, len(r.fields))}
	for i, f := range r.fields {
		out.fields[i] = entry{
			name:       f.name,
			components: f.components,
			data:       append([]float64(nil), f.data...),
		}
	}
	return out
}
