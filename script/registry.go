package script

import "sort"

// Registry maps declared script names to their compiled types.
type Registry struct {
	types map[string]*Type
}

func NewRegistry() *Registry {
	return &Registry{types: map[string]*Type{}}
}

// Register adds t, replacing a previous type with the same name.
func (r *Registry) Register(t *Type) {
	if t == nil {
		return
	}
	r.types[t.Name] = t
}

func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
