package state

import (
	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/modules/eventbus"
)

// CatalogChange is the payload of an items:changed event.
type CatalogChange struct {
	Catalog []*Product
}

// AppState owns the four pieces of session state: catalog, basket,
// order draft, and validation errors. All business rules live here;
// render units only ever see read copies pushed in by the wiring.
type AppState struct {
	eventbus.Entity

	Catalog    []*Product
	Basket     []*Product
	Order      shop.OrderDraft
	FormErrors shop.FormErrors

	submitting bool
}

// New creates an empty AppState announcing on the bus.
func New(bus *eventbus.Bus) *AppState {
	s := &AppState{
		Entity:     eventbus.NewEntity(bus),
		FormErrors: shop.FormErrors{},
	}
	s.Snapshot(func() any { return s.Order })
	return s
}

// SetCatalog replaces the catalog wholesale with fresh observable
// products and publishes items:changed. Basket entries are reconciled
// by id against the new catalog: surviving ids are re-pointed at the
// new instances (which become selected), vanished ids are dropped. A
// membership change publishes basket:changed.
func (s *AppState) SetCatalog(items []shop.ProductRecord) {
	bus := s.Events()
	s.Catalog = make([]*Product, 0, len(items))
	byID := make(map[string]*Product, len(items))
	for _, rec := range items {
		p := NewProduct(rec, bus)
		s.Catalog = append(s.Catalog, p)
		byID[p.ID] = p
	}

	if len(s.Basket) > 0 {
		kept := make([]*Product, 0, len(s.Basket))
		for _, old := range s.Basket {
			if fresh, ok := byID[old.ID]; ok {
				fresh.Selected = true
				kept = append(kept, fresh)
			}
		}
		changed := len(kept) != len(s.Basket)
		s.Basket = kept
		if changed {
			s.EmitChanges(shop.EventBasketChanged, s.Basket)
		}
	}

	s.EmitChanges(shop.EventItemsChanged, CatalogChange{Catalog: s.Catalog})
}

// AddToBasket appends the product unless an entry with the same id is
// already present. The duplicate case is a silent no-op: false, no
// event.
func (s *AppState) AddToBasket(p *Product) bool {
	for _, item := range s.Basket {
		if item.ID == p.ID {
			return false
		}
	}
	s.Basket = append(s.Basket, p)
	s.EmitChanges(shop.EventBasketChanged, s.Basket)
	return true
}

// RemoveFromBasket removes the entry with the given id and publishes
// basket:changed. An absent id is ignored and publishes nothing.
func (s *AppState) RemoveFromBasket(id string) {
	for i, item := range s.Basket {
		if item.ID == id {
			s.Basket = append(s.Basket[:i], s.Basket[i+1:]...)
			s.EmitChanges(shop.EventBasketChanged, s.Basket)
			return
		}
	}
}

// ClearBasket empties the basket and publishes basket:changed
// regardless of prior size.
func (s *AppState) ClearBasket() {
	s.Basket = s.Basket[:0]
	s.EmitChanges(shop.EventBasketChanged, s.Basket)
}

// BasketSize returns the number of basket entries.
func (s *AppState) BasketSize() int {
	return len(s.Basket)
}

// GetTotal sums the basket's prices. A nil price contributes zero.
func (s *AppState) GetTotal() float64 {
	total := 0.0
	for _, item := range s.Basket {
		total += item.PriceOrZero()
	}
	return total
}

// SetItems snapshots the current basket ids into the order draft. It
// is called immediately before submission, never incrementally.
func (s *AppState) SetItems() {
	ids := make([]string, 0, len(s.Basket))
	for _, item := range s.Basket {
		ids = append(ids, item.ID)
	}
	s.Order.Items = ids
}

// SetOrderField assigns one draft field and re-runs full validation of
// both form halves. When both halves are clean, order:ready fires with
// the current draft; it may fire again on later field changes.
func (s *AppState) SetOrderField(field, value string) {
	s.Order.SetField(field, value)
	s.validateForm()
}

func (s *AppState) validateForm() {
	contactsOK := s.ValidateContacts()
	deliveryOK := s.ValidateDelivery()
	if contactsOK && deliveryOK {
		s.EmitChanges(shop.EventOrderReady, s.Order)
	}
}

// ValidateContacts re-validates the contact half, replaces the error
// map, and always publishes contactsFormErrors:change, even when the
// result is unchanged.
func (s *AppState) ValidateContacts() bool {
	errs := shop.ValidateContacts(&s.Order)
	s.FormErrors = errs
	s.EmitChanges(shop.EventContactsErrors, errs)
	return len(errs) == 0
}

// ValidateDelivery re-validates the delivery half, replaces the error
// map, and always publishes orderFormErrors:change.
func (s *AppState) ValidateDelivery() bool {
	errs := shop.ValidateDelivery(&s.Order)
	s.FormErrors = errs
	s.EmitChanges(shop.EventOrderErrors, errs)
	return len(errs) == 0
}

// RefreshOrder resets the order draft to its empty initial shape. The
// basket and the error map are untouched.
func (s *AppState) RefreshOrder() {
	s.Order = shop.OrderDraft{}
}

// ResetSelected clears the selected flag on every catalog product that
// is not currently selected, reconciling display state after basket
// mutations outside this object's control.
func (s *AppState) ResetSelected() {
	for _, item := range s.Catalog {
		if !item.Selected {
			item.Selected = false
		}
	}
}

// FindProduct returns the catalog product with the given id, or nil.
func (s *AppState) FindProduct(id string) *Product {
	for _, item := range s.Catalog {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// BeginSubmit marks a submission as outstanding. It returns false when
// one already is, so a rapid repeated submit cannot fire a duplicate
// order.
func (s *AppState) BeginSubmit() bool {
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// EndSubmit clears the outstanding-submission mark. Called from the
// completion handler on success and failure alike.
func (s *AppState) EndSubmit() {
	s.submitting = false
}

// Submitting reports whether a submission is outstanding.
func (s *AppState) Submitting() bool {
	return s.submitting
}
