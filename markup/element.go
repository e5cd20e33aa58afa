// Package markup provides the element tree the render units bind to:
// a small DOM stand-in with classes, attributes, text content, disabled
// state, and synchronous event dispatch with upward propagation. The
// web module serializes the tree to HTML; tests drive it directly.
package markup

import (
	"sort"
	"strings"
)

// Event is dispatched to listeners on an element. Click events bubble
// from the target up to the root unless a listener stops propagation.
type Event struct {
	Name    string
	Value   string
	Target  *Element
	stopped bool
}

// StopPropagation prevents the event from reaching ancestor listeners.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener receives dispatched events.
type Listener func(*Event)

// Element is one node of the tree.
type Element struct {
	Tag string

	classes   []string
	attrs     map[string]string
	text      string
	value     string
	disabled  bool
	parent    *Element
	children  []*Element
	listeners map[string][]Listener
}

// New creates an element with the given tag and classes.
func New(tag string, classes ...string) *Element {
	return &Element{Tag: tag, classes: append([]string(nil), classes...)}
}

// Append adds children and returns the element for chaining.
func (el *Element) Append(kids ...*Element) *Element {
	for _, kid := range kids {
		kid.parent = el
		el.children = append(el.children, kid)
	}
	return el
}

// ReplaceChildren swaps the element's children wholesale.
func (el *Element) ReplaceChildren(kids ...*Element) {
	for _, old := range el.children {
		old.parent = nil
	}
	el.children = el.children[:0]
	el.Append(kids...)
}

// Remove detaches the element from its parent, if any.
func (el *Element) Remove() {
	p := el.parent
	if p == nil {
		return
	}
	for i, kid := range p.children {
		if kid == el {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	el.parent = nil
}

// Children returns the element's children in order.
func (el *Element) Children() []*Element {
	return el.children
}

// SetAttr sets an attribute and returns the element for chaining.
func (el *Element) SetAttr(key, value string) *Element {
	if el.attrs == nil {
		el.attrs = make(map[string]string)
	}
	el.attrs[key] = value
	return el
}

// Attr returns the attribute value, or "".
func (el *Element) Attr(key string) string {
	return el.attrs[key]
}

// SetText replaces the element's text content.
func (el *Element) SetText(s string) {
	el.text = s
}

// Text returns the element's text content.
func (el *Element) Text() string {
	return el.text
}

// SetValue sets the element's input value without firing events.
func (el *Element) SetValue(s string) {
	el.value = s
}

// Value returns the element's input value.
func (el *Element) Value() string {
	return el.value
}

// SetDisabled toggles the disabled flag.
func (el *Element) SetDisabled(disabled bool) {
	el.disabled = disabled
}

// Disabled reports the disabled flag.
func (el *Element) Disabled() bool {
	return el.disabled
}

// ToggleClass adds or removes a class.
func (el *Element) ToggleClass(name string, on bool) {
	has := el.HasClass(name)
	if on && !has {
		el.classes = append(el.classes, name)
	}
	if !on && has {
		kept := el.classes[:0]
		for _, c := range el.classes {
			if c != name {
				kept = append(kept, c)
			}
		}
		el.classes = kept
	}
}

// HasClass reports whether the element carries the class.
func (el *Element) HasClass(name string) bool {
	for _, c := range el.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Query returns the first descendant carrying the class, depth-first,
// or nil.
func (el *Element) Query(class string) *Element {
	for _, kid := range el.children {
		if kid.HasClass(class) {
			return kid
		}
		if found := kid.Query(class); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant carrying the class, depth-first.
func (el *Element) QueryAll(class string) []*Element {
	var found []*Element
	for _, kid := range el.children {
		if kid.HasClass(class) {
			found = append(found, kid)
		}
		found = append(found, kid.QueryAll(class)...)
	}
	return found
}

// QueryName returns the first descendant whose name attribute matches,
// or nil. Form units look their inputs up by name.
func (el *Element) QueryName(name string) *Element {
	for _, kid := range el.children {
		if kid.attrs["name"] == name {
			return kid
		}
		if found := kid.QueryName(name); found != nil {
			return found
		}
	}
	return nil
}

// On registers a listener for the named event.
func (el *Element) On(event string, fn Listener) {
	if el.listeners == nil {
		el.listeners = make(map[string][]Listener)
	}
	el.listeners[event] = append(el.listeners[event], fn)
}

// Click dispatches a click event that bubbles from this element to the
// root. A disabled element swallows the click.
func (el *Element) Click() {
	if el.disabled {
		return
	}
	ev := &Event{Name: "click", Target: el}
	for node := el; node != nil && !ev.stopped; node = node.parent {
		for _, fn := range node.listeners["click"] {
			fn(ev)
			if ev.stopped {
				break
			}
		}
	}
}

// Input sets the element's value and dispatches an input event to the
// element's own listeners. Input events do not bubble.
func (el *Element) Input(value string) {
	el.value = value
	ev := &Event{Name: "input", Value: value, Target: el}
	for _, fn := range el.listeners["input"] {
		fn(ev)
	}
}

// Clone deep-copies the element subtree. Listeners are not copied: a
// clone is inert markup until a render unit binds to it.
func (el *Element) Clone() *Element {
	dup := &Element{
		Tag:      el.Tag,
		classes:  append([]string(nil), el.classes...),
		text:     el.text,
		value:    el.value,
		disabled: el.disabled,
	}
	if el.attrs != nil {
		dup.attrs = make(map[string]string, len(el.attrs))
		for k, v := range el.attrs {
			dup.attrs[k] = v
		}
	}
	for _, kid := range el.children {
		dup.Append(kid.Clone())
	}
	return dup
}

// HTML serializes the subtree. Attributes render in sorted order so
// output is stable.
func (el *Element) HTML() string {
	var b strings.Builder
	el.writeHTML(&b)
	return b.String()
}

func (el *Element) writeHTML(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(el.Tag)
	if len(el.classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(strings.Join(el.classes, " "))
		b.WriteByte('"')
	}
	keys := make([]string, 0, len(el.attrs))
	for k := range el.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escape(el.attrs[k]))
		b.WriteByte('"')
	}
	if el.value != "" {
		b.WriteString(` value="`)
		b.WriteString(escape(el.value))
		b.WriteByte('"')
	}
	if el.disabled {
		b.WriteString(" disabled")
	}
	b.WriteByte('>')
	b.WriteString(escape(el.text))
	for _, kid := range el.children {
		kid.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(el.Tag)
	b.WriteByte('>')
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return escaper.Replace(s)
}
