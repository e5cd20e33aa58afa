package view

import (
	"strconv"

	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/markup"
	"github.com/example/storefront-demo/modules/eventbus"
)

const lockedClass = "page__wrapper_locked"

// Page is the shell unit: basket counter, catalog slot, and the scroll
// lock flag.
type Page struct {
	Component

	counter *markup.Element
	catalog *markup.Element
	wrapper *markup.Element
}

// NewPage binds the page shell. The basket button publishes
// basket:open.
func NewPage(root *markup.Element, bus *eventbus.Bus) (*Page, error) {
	counter, err := Require(root, "header__basket-counter")
	if err != nil {
		return nil, err
	}
	basketBtn, err := Require(root, "header__basket")
	if err != nil {
		return nil, err
	}
	catalog, err := Require(root, "gallery")
	if err != nil {
		return nil, err
	}
	wrapper, err := Require(root, "page__wrapper")
	if err != nil {
		return nil, err
	}

	p := &Page{
		Component: NewComponent(root),
		counter:   counter,
		catalog:   catalog,
		wrapper:   wrapper,
	}

	basketBtn.On("click", func(ev *markup.Event) {
		ev.StopPropagation()
		bus.Publish(shop.EventBasketOpen, nil)
	})

	p.Bind("counter", func(v any) {
		if n, ok := v.(int); ok {
			p.SetCounter(n)
		}
	})
	p.Bind("catalog", func(v any) {
		if items, ok := v.([]*markup.Element); ok {
			p.SetCatalog(items)
		}
	})
	p.Bind("locked", func(v any) {
		if locked, ok := v.(bool); ok {
			p.SetLocked(locked)
		}
	})
	return p, nil
}

// SetCounter writes the basket item count into the header.
func (p *Page) SetCounter(n int) {
	p.counter.SetText(strconv.Itoa(n))
}

// SetCatalog replaces the rendered catalog cards.
func (p *Page) SetCatalog(items []*markup.Element) {
	p.catalog.ReplaceChildren(items...)
}

// SetLocked toggles the background scroll lock.
func (p *Page) SetLocked(locked bool) {
	p.wrapper.ToggleClass(lockedClass, locked)
}

// Locked reports the lock flag.
func (p *Page) Locked() bool {
	return p.wrapper.HasClass(lockedClass)
}
