// Package view contains the render units: thin projectors from session
// state to the markup tree and from markup events to bus events. A
// unit never owns business state and never touches another unit's
// subtree.
package view

import (
	"fmt"

	"github.com/example/storefront-demo/markup"
)

// Component is the render-unit base: a bound root element plus a
// registry of property setters. Render assigns each recognized
// property; unknown properties are ignored.
type Component struct {
	root    *markup.Element
	setters map[string]func(any)
}

// NewComponent creates a component bound to the root element.
func NewComponent(root *markup.Element) Component {
	return Component{root: root, setters: make(map[string]func(any))}
}

// Bind registers the setter for one render property.
func (c *Component) Bind(prop string, set func(any)) {
	c.setters[prop] = set
}

// Render applies the property bag and returns the bound root element
// for insertion by the caller.
func (c *Component) Render(props map[string]any) *markup.Element {
	for prop, value := range props {
		if set, ok := c.setters[prop]; ok {
			set(value)
		}
	}
	return c.root
}

// Root returns the bound root element.
func (c *Component) Root() *markup.Element {
	return c.root
}

// Require looks up a child element by class. A missing element is a
// construction error: a structurally incomplete unit must not exist.
func Require(root *markup.Element, class string) (*markup.Element, error) {
	el := root.Query(class)
	if el == nil {
		return nil, fmt.Errorf("required element %q not found", class)
	}
	return el, nil
}
