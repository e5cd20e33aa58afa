package markup

// KeyListener receives document-level key presses.
type KeyListener func(key string)

type keyListenerEntry struct {
	id uint64
	fn KeyListener
}

// Document is the page-level container: the root element plus the
// session-scoped key listeners a modal installs while open.
type Document struct {
	Root *Element

	nextKeyID uint64
	keys      []keyListenerEntry
}

// NewDocument creates a document around the given root element.
func NewDocument(root *Element) *Document {
	return &Document{Root: root}
}

// AddKeyListener installs a key listener and returns its handle.
func (d *Document) AddKeyListener(fn KeyListener) uint64 {
	d.nextKeyID++
	d.keys = append(d.keys, keyListenerEntry{id: d.nextKeyID, fn: fn})
	return d.nextKeyID
}

// RemoveKeyListener uninstalls the listener with the given handle.
func (d *Document) RemoveKeyListener(id uint64) {
	kept := d.keys[:0]
	for _, entry := range d.keys {
		if entry.id != id {
			kept = append(kept, entry)
		}
	}
	d.keys = kept
}

// PressKey dispatches a key press to every installed listener.
func (d *Document) PressKey(key string) {
	// Snapshot: a listener may uninstall itself while handling the key.
	entries := append([]keyListenerEntry(nil), d.keys...)
	for _, entry := range entries {
		entry.fn(key)
	}
}
