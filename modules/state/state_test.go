package state

import (
	"testing"

	"github.com/example/storefront-demo/domain/shop"
	"github.com/example/storefront-demo/modules/eventbus"
)

func price(v float64) *float64 {
	return &v
}

func record(id string, p *float64) shop.ProductRecord {
	return shop.ProductRecord{ID: id, Title: "item " + id, Price: p}
}

func newState(t *testing.T) (*AppState, *eventbus.Bus) {
	t.Helper()
	bus := eventbus.New()
	return New(bus), bus
}

func TestAddToBasketRejectsDuplicateID(t *testing.T) {
	s, bus := newState(t)
	events := 0
	bus.Subscribe(shop.EventBasketChanged, func(any) { events++ })

	p := NewProduct(record("a", price(100)), bus)

	if !s.AddToBasket(p) {
		t.Fatal("first AddToBasket returned false")
	}
	if s.AddToBasket(p) {
		t.Error("second AddToBasket returned true, want false")
	}
	if s.BasketSize() != 1 {
		t.Errorf("basket size = %d, want 1", s.BasketSize())
	}
	if events != 1 {
		t.Errorf("basket:changed fired %d times, want 1", events)
	}
}

func TestGetTotalTreatsNilPriceAsZero(t *testing.T) {
	s, bus := newState(t)
	s.AddToBasket(NewProduct(record("a", price(100)), bus))
	s.AddToBasket(NewProduct(record("b", nil), bus))
	s.AddToBasket(NewProduct(record("c", price(250)), bus))

	if got := s.GetTotal(); got != 350 {
		t.Errorf("GetTotal() = %v, want 350", got)
	}
}

func TestRemoveFromBasketAbsentIDIsSilent(t *testing.T) {
	s, bus := newState(t)
	s.AddToBasket(NewProduct(record("a", price(100)), bus))

	events := 0
	bus.Subscribe(shop.EventBasketChanged, func(any) { events++ })

	s.RemoveFromBasket("missing")

	if s.BasketSize() != 1 {
		t.Errorf("basket size = %d, want 1", s.BasketSize())
	}
	if events != 0 {
		t.Errorf("basket:changed fired %d times, want 0", events)
	}
}

func TestRemoveFromBasketPublishes(t *testing.T) {
	s, bus := newState(t)
	s.AddToBasket(NewProduct(record("a", price(100)), bus))

	var payload any
	bus.Subscribe(shop.EventBasketChanged, func(data any) { payload = data })

	s.RemoveFromBasket("a")

	if s.BasketSize() != 0 {
		t.Errorf("basket size = %d, want 0", s.BasketSize())
	}
	items, ok := payload.([]*Product)
	if !ok || len(items) != 0 {
		t.Errorf("payload = %#v, want empty basket list", payload)
	}
}

func TestClearBasketAlwaysPublishes(t *testing.T) {
	s, bus := newState(t)
	events := 0
	bus.Subscribe(shop.EventBasketChanged, func(any) { events++ })

	s.ClearBasket()

	if events != 1 {
		t.Errorf("basket:changed fired %d times, want 1", events)
	}
}

func TestOrderReadyFiresExactlyOnceAfterLastField(t *testing.T) {
	s, bus := newState(t)
	ready := 0
	bus.Subscribe(shop.EventOrderReady, func(any) { ready++ })

	s.SetOrderField(shop.FieldPayment, shop.PaymentCard)
	s.SetOrderField(shop.FieldAddress, "Baker Street 221b")
	s.SetOrderField(shop.FieldEmail, "user.name@example.com")
	if ready != 0 {
		t.Fatalf("order:ready fired %d times before the last field", ready)
	}

	s.SetOrderField(shop.FieldPhone, "+7 912 345 67 89")
	if ready != 1 {
		t.Errorf("order:ready fired %d times, want 1", ready)
	}
}

func TestValidationEventsFireOnEveryPass(t *testing.T) {
	s, bus := newState(t)
	orderErrs, contactErrs := 0, 0
	bus.Subscribe(shop.EventOrderErrors, func(any) { orderErrs++ })
	bus.Subscribe(shop.EventContactsErrors, func(any) { contactErrs++ })

	s.SetOrderField(shop.FieldAddress, "somewhere")
	s.SetOrderField(shop.FieldAddress, "somewhere") // unchanged result

	if orderErrs != 2 || contactErrs != 2 {
		t.Errorf("error events = %d/%d, want 2/2 (idempotent re-publish)", orderErrs, contactErrs)
	}
}

func TestDeliveryErrorsCarryAddressMessage(t *testing.T) {
	s, bus := newState(t)
	var last shop.FormErrors
	bus.Subscribe(shop.EventOrderErrors, func(data any) { last = data.(shop.FormErrors) })

	s.SetOrderField(shop.FieldPayment, shop.PaymentCash)
	if last[shop.FieldAddress] != shop.MsgMissingAddress {
		t.Errorf("address error = %q, want %q", last[shop.FieldAddress], shop.MsgMissingAddress)
	}

	s.SetOrderField(shop.FieldAddress, "filled in")
	if len(last) != 0 {
		t.Errorf("errors after filling address = %v, want empty", last)
	}
}

func TestRefreshOrderLeavesBasketAlone(t *testing.T) {
	s, bus := newState(t)
	s.AddToBasket(NewProduct(record("a", price(100)), bus))
	s.SetOrderField(shop.FieldEmail, "a@b.io")
	s.SetItems()
	total := s.GetTotal()
	s.Order.Total = &total

	s.RefreshOrder()

	if s.Order.Email != "" || s.Order.Payment != "" || s.Order.Address != "" || s.Order.Phone != "" {
		t.Errorf("draft fields not reset: %+v", s.Order)
	}
	if s.Order.Total != nil {
		t.Errorf("Total = %v, want nil", *s.Order.Total)
	}
	if len(s.Order.Items) != 0 {
		t.Errorf("Items = %v, want empty", s.Order.Items)
	}
	if s.BasketSize() != 1 {
		t.Errorf("basket size = %d, want 1", s.BasketSize())
	}
}

func TestSetItemsSnapshotsBasketIDs(t *testing.T) {
	s, bus := newState(t)
	s.AddToBasket(NewProduct(record("a", price(1)), bus))
	s.AddToBasket(NewProduct(record("b", price(2)), bus))

	s.SetItems()

	if len(s.Order.Items) != 2 || s.Order.Items[0] != "a" || s.Order.Items[1] != "b" {
		t.Errorf("Items = %v, want [a b]", s.Order.Items)
	}
}

func TestSetCatalogPublishesAndReconcilesBasket(t *testing.T) {
	s, bus := newState(t)

	var change CatalogChange
	bus.Subscribe(shop.EventItemsChanged, func(data any) { change = data.(CatalogChange) })

	s.SetCatalog([]shop.ProductRecord{record("a", price(100)), record("b", price(200))})
	if len(change.Catalog) != 2 {
		t.Fatalf("catalog size = %d, want 2", len(change.Catalog))
	}

	s.AddToBasket(s.FindProduct("a"))
	s.AddToBasket(s.FindProduct("b"))

	// Reload drops product b; the basket keeps only the surviving id,
	// re-pointed at the fresh instance.
	s.SetCatalog([]shop.ProductRecord{record("a", price(150))})

	if s.BasketSize() != 1 {
		t.Fatalf("basket size after reload = %d, want 1", s.BasketSize())
	}
	if s.Basket[0] != s.FindProduct("a") {
		t.Error("basket entry not re-pointed at the fresh catalog instance")
	}
	if !s.Basket[0].Selected {
		t.Error("surviving basket entry lost its selected flag")
	}
	if got := s.GetTotal(); got != 150 {
		t.Errorf("total after reload = %v, want 150", got)
	}
}

func TestSubmissionGuard(t *testing.T) {
	s, _ := newState(t)

	if !s.BeginSubmit() {
		t.Fatal("first BeginSubmit returned false")
	}
	if s.BeginSubmit() {
		t.Error("second BeginSubmit returned true while outstanding")
	}
	s.EndSubmit()
	if !s.BeginSubmit() {
		t.Error("BeginSubmit after EndSubmit returned false")
	}
}

func TestProductUpdateGuarded(t *testing.T) {
	bus := eventbus.New()
	p := NewProduct(record("a", price(10)), bus)

	p.Update(map[string]any{"selected": true, "unknown": 1})

	if !p.Selected {
		t.Error("Selected not set through guarded update")
	}
}
