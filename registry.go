package dispatch

import "reflect"

// EventID is the dense identifier a Registry assigns to an event type.
// Identifiers start at 0, increase monotonically in first-use order, and
// are never reused.
type EventID int

// Registry assigns each event type a stable identifier on first use.
// Repeated lookups for the same type always return the same EventID.
//
// A Registry is not safe for concurrent use. A Bus owns a private Registry
// unless one is injected with WithRegistry; injecting the same Registry
// into several buses keeps identifiers stable across them.
type Registry struct {
	ids   map[reflect.Type]EventID
	types []reflect.Type
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[reflect.Type]EventID)}
}

// ID returns the identifier for typ, assigning the next unused one on
// first reference.
func (r *Registry) ID(typ reflect.Type) EventID {
	if id, ok := r.ids[typ]; ok {
		return id
	}
	id := EventID(len(r.types))
	r.ids[typ] = id
	r.types = append(r.types, typ)
	return id
}

// Lookup returns the identifier for typ if it has been referenced before.
// Unlike ID it never assigns.
func (r *Registry) Lookup(typ reflect.Type) (EventID, bool) {
	id, ok := r.ids[typ]
	return id, ok
}

// Type returns the type registered under id.
func (r *Registry) Type(id EventID) reflect.Type {
	return r.types[id]
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

// EventIDFor returns the identifier for T in r, assigning it on first
// reference.
func EventIDFor[T any](r *Registry) EventID {
	return r.ID(reflect.TypeFor[T]())
}
