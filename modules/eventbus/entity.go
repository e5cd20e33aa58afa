package eventbus

import "log"

// Setter assigns one named field of an entity. It returns false when
// the supplied value has the wrong type.
type Setter func(value any) bool

// Entity is the observable base every stateful domain object composes
// with: a set of named field setters, a snapshot function, and a
// back-reference to the bus so mutators can announce changes. It
// carries no business rules.
type Entity struct {
	bus      *Bus
	setters  map[string]Setter
	snapshot func() any
}

// NewEntity creates an entity bound to the bus.
func NewEntity(bus *Bus) Entity {
	return Entity{bus: bus, setters: make(map[string]Setter)}
}

// Bind registers the setter for one field name.
func (e *Entity) Bind(field string, set Setter) {
	e.setters[field] = set
}

// Snapshot registers the function producing the entity's current field
// snapshot, the default EmitChanges payload.
func (e *Entity) Snapshot(fn func() any) {
	e.snapshot = fn
}

// Update applies every known field in the patch. An unknown field or a
// type mismatch is logged and skipped; it never fails the session.
func (e *Entity) Update(patch map[string]any) {
	for field, value := range patch {
		set, ok := e.setters[field]
		if !ok {
			log.Printf("[entity] ignoring unknown field %q", field)
			continue
		}
		if !set(value) {
			log.Printf("[entity] ignoring field %q: unexpected type %T", field, value)
		}
	}
}

// EmitChanges publishes the event with the given payload, defaulting
// to the entity's snapshot when none is supplied.
func (e *Entity) EmitChanges(event string, data ...any) {
	if len(data) > 0 {
		e.bus.Publish(event, data[0])
		return
	}
	var payload any
	if e.snapshot != nil {
		payload = e.snapshot()
	}
	e.bus.Publish(event, payload)
}

// Events returns the bus the entity announces on.
func (e *Entity) Events() *Bus {
	return e.bus
}

// StringSetter adapts a string field for Bind.
func StringSetter(dst *string) Setter {
	return func(value any) bool {
		s, ok := value.(string)
		if ok {
			*dst = s
		}
		return ok
	}
}

// BoolSetter adapts a bool field for Bind.
func BoolSetter(dst *bool) Setter {
	return func(value any) bool {
		b, ok := value.(bool)
		if ok {
			*dst = b
		}
		return ok
	}
}

// PriceSetter adapts an optional numeric field for Bind. It accepts a
// float64, a *float64, or nil (the not-for-sale sentinel).
func PriceSetter(dst **float64) Setter {
	return func(value any) bool {
		switch v := value.(type) {
		case nil:
			*dst = nil
		case float64:
			*dst = &v
		case *float64:
			*dst = v
		default:
			return false
		}
		return true
	}
}
