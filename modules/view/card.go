package view

import (
	"strconv"

	"github.com/example/storefront-demo/markup"
)

// CardActions carries the click callback the wiring binds into a card.
type CardActions struct {
	OnClick func()
}

// Card projects one product onto a catalog card subtree.
type Card struct {
	Component

	title    *markup.Element
	image    *markup.Element
	category *markup.Element
	price    *markup.Element
	button   *markup.Element
}

// NewCard binds a card unit to a cloned card template. Title and image
// are required; category, price, and the buy button are optional in
// some card variants.
func NewCard(block string, root *markup.Element, actions *CardActions) (*Card, error) {
	title, err := Require(root, block+"__title")
	if err != nil {
		return nil, err
	}
	image, err := Require(root, block+"__image")
	if err != nil {
		return nil, err
	}

	c := &Card{
		Component: NewComponent(root),
		title:     title,
		image:     image,
		category:  root.Query(block + "__category"),
		price:     root.Query(block + "__price"),
		button:    root.Query(block + "__button"),
	}

	if actions != nil && actions.OnClick != nil {
		target := root
		if c.button != nil {
			target = c.button
		}
		target.On("click", func(ev *markup.Event) {
			ev.StopPropagation()
			actions.OnClick()
		})
	}

	c.Bind("id", func(v any) {
		if id, ok := v.(string); ok {
			root.SetAttr("data-id", id)
		}
	})
	c.Bind("title", func(v any) {
		if s, ok := v.(string); ok {
			title.SetText(s)
		}
	})
	c.Bind("image", func(v any) {
		if s, ok := v.(string); ok {
			image.SetAttr("src", s)
		}
	})
	c.Bind("category", func(v any) {
		if s, ok := v.(string); ok && c.category != nil {
			c.category.SetText(s)
		}
	})
	c.Bind("price", func(v any) {
		price, _ := v.(*float64)
		c.SetPrice(price)
	})
	c.Bind("selected", func(v any) {
		if sel, ok := v.(bool); ok {
			c.SetSelected(sel)
		}
	})
	return c, nil
}

// SetPrice writes the price label; a nil price renders the
// not-for-sale text and disables the buy control for good.
func (c *Card) SetPrice(price *float64) {
	if c.price != nil {
		c.price.SetText(priceLabel(price))
	}
	if c.button != nil && price == nil {
		c.button.SetDisabled(true)
	}
}

// SetSelected disables the buy control for an item already in the
// basket. It never re-enables a control disabled for other reasons.
func (c *Card) SetSelected(selected bool) {
	if c.button != nil && !c.button.Disabled() {
		c.button.SetDisabled(selected)
	}
}

// CardPreview is the modal variant of the card, with a description.
type CardPreview struct {
	*Card

	description *markup.Element
}

// NewCardPreview binds the preview card unit.
func NewCardPreview(root *markup.Element, actions *CardActions) (*CardPreview, error) {
	card, err := NewCard("card", root, actions)
	if err != nil {
		return nil, err
	}
	p := &CardPreview{Card: card, description: root.Query("card__text")}
	p.Bind("description", func(v any) {
		if s, ok := v.(string); ok && p.description != nil {
			p.description.SetText(s)
		}
	})
	return p, nil
}

// BasketItemActions carries the delete callback for a basket line.
type BasketItemActions struct {
	OnDelete func()
}

// BasketItem projects one basket entry onto a line-item subtree.
type BasketItem struct {
	Component

	index  *markup.Element
	title  *markup.Element
	price  *markup.Element
	remove *markup.Element
}

// NewBasketItem binds a basket line unit. All four child elements are
// required.
func NewBasketItem(root *markup.Element, actions *BasketItemActions) (*BasketItem, error) {
	index, err := Require(root, "basket__item-index")
	if err != nil {
		return nil, err
	}
	title, err := Require(root, "card__title")
	if err != nil {
		return nil, err
	}
	price, err := Require(root, "card__price")
	if err != nil {
		return nil, err
	}
	remove, err := Require(root, "card__button")
	if err != nil {
		return nil, err
	}

	b := &BasketItem{
		Component: NewComponent(root),
		index:     index,
		title:     title,
		price:     price,
		remove:    remove,
	}

	remove.On("click", func(ev *markup.Event) {
		ev.StopPropagation()
		if actions != nil && actions.OnDelete != nil {
			actions.OnDelete()
		}
		root.Remove()
	})

	b.Bind("title", func(v any) {
		if s, ok := v.(string); ok {
			title.SetText(s)
		}
	})
	b.Bind("index", func(v any) {
		if n, ok := v.(int); ok {
			b.SetIndex(n)
		}
	})
	b.Bind("price", func(v any) {
		if p, ok := v.(*float64); ok {
			price.SetText(priceLabel(p))
		}
	})
	return b, nil
}

// SetIndex writes the 1-based position label.
func (b *BasketItem) SetIndex(n int) {
	b.index.SetText(strconv.Itoa(n))
}
