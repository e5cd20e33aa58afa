package markup

import "fmt"

// Templates is a registry of named markup fragments. Render units bind
// to clones of these, never to the registered originals.
type Templates struct {
	frags map[string]*Element
}

// NewTemplates creates an empty registry.
func NewTemplates() *Templates {
	return &Templates{frags: make(map[string]*Element)}
}

// Register stores a fragment under the given name. Re-registering a
// name replaces the previous fragment.
func (t *Templates) Register(name string, el *Element) {
	t.frags[name] = el
}

// Clone returns a fresh deep copy of the named fragment.
func (t *Templates) Clone(name string) (*Element, error) {
	frag, ok := t.frags[name]
	if !ok {
		return nil, fmt.Errorf("template %q not registered", name)
	}
	return frag.Clone(), nil
}
