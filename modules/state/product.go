// Package state holds the session's single mutable state object: the
// catalog of observable products, the basket, the order draft, and the
// validation-error map, together with the checkout rules.
package state

import (
	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/modules/eventbus"
)

// Product is one catalog item as an observable entity: the record
// fields plus the transient Selected flag (true iff it is currently in
// the basket).
type Product struct {
	eventbus.Entity

	ID          string
	Title       string
	Description string
	Image       string
	Category    string
	Price       *float64
	Selected    bool
}

// NewProduct builds an observable product from a catalog record.
func NewProduct(rec shop.ProductRecord, bus *eventbus.Bus) *Product {
	p := &Product{
		Entity:      eventbus.NewEntity(bus),
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Image:       rec.Image,
		Category:    rec.Category,
		Price:       rec.Price,
	}
	p.Bind("id", eventbus.StringSetter(&p.ID))
	p.Bind("title", eventbus.StringSetter(&p.Title))
	p.Bind("description", eventbus.StringSetter(&p.Description))
	p.Bind("image", eventbus.StringSetter(&p.Image))
	p.Bind("category", eventbus.StringSetter(&p.Category))
	p.Bind("price", eventbus.PriceSetter(&p.Price))
	p.Bind("selected", eventbus.BoolSetter(&p.Selected))
	p.Snapshot(func() any { return p.Record() })
	return p
}

// Record returns the product's catalog record, without the transient
// selection flag.
func (p *Product) Record() shop.ProductRecord {
	return shop.ProductRecord{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
		Price:       p.Price,
	}
}

// PriceOrZero returns the price, counting the not-for-sale sentinel as
// zero.
func (p *Product) PriceOrZero() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}
