package view

import (
	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/markup"
	"github.com/example/storefront-demo/modules/eventbus"
)

const modalActiveClass = "modal_active"

// Modal is the dialog shell. Its state is binary: closed or open.
// Rendering content always opens it; there is no way to populate the
// dialog without showing it.
type Modal struct {
	Component

	bus     *eventbus.Bus
	doc     *markup.Document
	content *markup.Element

	keyListener uint64
	open        bool
}

// NewModal binds the dialog unit to its container. A backdrop click
// closes the dialog; clicks inside the content area stop at the
// content boundary.
func NewModal(root *markup.Element, doc *markup.Document, bus *eventbus.Bus) (*Modal, error) {
	closeBtn, err := Require(root, "modal__close")
	if err != nil {
		return nil, err
	}
	content, err := Require(root, "modal__content")
	if err != nil {
		return nil, err
	}

	m := &Modal{
		Component: NewComponent(root),
		bus:       bus,
		doc:       doc,
		content:   content,
	}

	closeBtn.On("click", func(ev *markup.Event) {
		ev.StopPropagation()
		m.Close()
	})
	root.On("click", func(*markup.Event) {
		m.Close()
	})
	content.On("click", func(ev *markup.Event) {
		ev.StopPropagation()
	})

	m.Bind("content", func(v any) {
		if el, ok := v.(*markup.Element); ok {
			m.SetContent(el)
		}
	})
	return m, nil
}

// SetContent replaces the dialog content; nil clears it.
func (m *Modal) SetContent(el *markup.Element) {
	if el == nil {
		m.content.ReplaceChildren()
		return
	}
	m.content.ReplaceChildren(el)
}

// Open shows the dialog, installs the session-scoped Escape listener,
// and publishes modal:open.
func (m *Modal) Open() {
	m.Root().ToggleClass(modalActiveClass, true)
	if !m.open {
		m.keyListener = m.doc.AddKeyListener(func(key string) {
			if key == "Escape" {
				m.Close()
			}
		})
	}
	m.open = true
	m.bus.Publish(shop.EventModalOpen, nil)
}

// Close hides the dialog, uninstalls the key listener, clears the
// content, and publishes modal:close.
func (m *Modal) Close() {
	m.Root().ToggleClass(modalActiveClass, false)
	if m.open {
		m.doc.RemoveKeyListener(m.keyListener)
	}
	m.open = false
	m.SetContent(nil)
	m.bus.Publish(shop.EventModalClose, nil)
}

// IsOpen reports whether the dialog is showing.
func (m *Modal) IsOpen() bool {
	return m.open
}

// RenderContent sets the content and opens the dialog as a side
// effect.
func (m *Modal) RenderContent(el *markup.Element) *markup.Element {
	m.SetContent(el)
	m.Open()
	return m.Root()
}
