package view

import (
	"strconv"

	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/markup"
	"github.com/example/storefront-demo/modules/eventbus"
)

// BasketView is the basket panel: the line-item list, the total, and
// the order button.
type BasketView struct {
	Component

	items  *markup.Element
	price  *markup.Element
	button *markup.Element
}

// NewBasketView binds the basket panel unit. The order button
// publishes basket:order.
func NewBasketView(root *markup.Element, bus *eventbus.Bus) (*BasketView, error) {
	items, err := Require(root, "basket__list")
	if err != nil {
		return nil, err
	}
	price, err := Require(root, "basket__price")
	if err != nil {
		return nil, err
	}
	button, err := Require(root, "basket__button")
	if err != nil {
		return nil, err
	}

	b := &BasketView{
		Component: NewComponent(root),
		items:     items,
		price:     price,
		button:    button,
	}

	button.On("click", func(ev *markup.Event) {
		ev.StopPropagation()
		bus.Publish(shop.EventBasketOrder, nil)
	})

	b.Bind("items", func(v any) {
		if list, ok := v.([]*markup.Element); ok {
			b.SetList(list)
		}
	})
	b.Bind("price", func(v any) {
		if total, ok := v.(float64); ok {
			b.SetPrice(total)
		}
	})
	return b, nil
}

// SetList replaces the line items, disables the order button when the
// basket is empty, and rewrites the 1-based position labels.
func (b *BasketView) SetList(items []*markup.Element) {
	b.items.ReplaceChildren(items...)
	b.button.SetDisabled(len(items) == 0)
	b.refreshIndex()
}

// SetPrice writes the basket total.
func (b *BasketView) SetPrice(total float64) {
	b.price.SetText(FormatPrice(total) + currencySuffix)
}

// DisableButton forces the order button off, whatever the list holds.
func (b *BasketView) DisableButton() {
	b.button.SetDisabled(true)
}

func (b *BasketView) refreshIndex() {
	for i, item := range b.items.Children() {
		if idx := item.Query("basket__item-index"); idx != nil {
			idx.SetText(strconv.Itoa(i + 1))
		}
	}
}
