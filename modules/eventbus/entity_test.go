package eventbus

import "testing"

type testRecord struct {
	Title    string
	Selected bool
	Price    *float64
}

func newTestEntity(bus *Bus) (*Entity, *testRecord) {
	rec := &testRecord{}
	e := NewEntity(bus)
	e.Bind("title", StringSetter(&rec.Title))
	e.Bind("selected", BoolSetter(&rec.Selected))
	e.Bind("price", PriceSetter(&rec.Price))
	e.Snapshot(func() any { return *rec })
	return &e, rec
}

func TestEntityUpdateKnownFields(t *testing.T) {
	e, rec := newTestEntity(New())

	e.Update(map[string]any{
		"title":    "Widget",
		"selected": true,
		"price":    float64(100),
	})

	if rec.Title != "Widget" {
		t.Errorf("Title = %q, want %q", rec.Title, "Widget")
	}
	if !rec.Selected {
		t.Error("Selected = false, want true")
	}
	if rec.Price == nil || *rec.Price != 100 {
		t.Errorf("Price = %v, want 100", rec.Price)
	}
}

func TestEntityUpdateIgnoresUnknownAndMistyped(t *testing.T) {
	e, rec := newTestEntity(New())
	rec.Title = "kept"

	e.Update(map[string]any{
		"bogus": "value",
		"title": 42,
	})

	if rec.Title != "kept" {
		t.Errorf("Title = %q, want unchanged %q", rec.Title, "kept")
	}
}

func TestEntityNilPrice(t *testing.T) {
	e, rec := newTestEntity(New())
	price := 50.0
	rec.Price = &price

	e.Update(map[string]any{"price": nil})

	if rec.Price != nil {
		t.Errorf("Price = %v, want nil", *rec.Price)
	}
}

func TestEmitChangesDefaultsToSnapshot(t *testing.T) {
	bus := New()
	e, rec := newTestEntity(bus)
	rec.Title = "snap"

	var got any
	bus.Subscribe("entity:changed", func(data any) { got = data })

	e.EmitChanges("entity:changed")

	snap, ok := got.(testRecord)
	if !ok || snap.Title != "snap" {
		t.Errorf("payload = %#v, want snapshot with Title=snap", got)
	}
}

func TestEmitChangesExplicitPayload(t *testing.T) {
	bus := New()
	e, _ := newTestEntity(bus)

	var got any
	bus.Subscribe("entity:changed", func(data any) { got = data })

	e.EmitChanges("entity:changed", "explicit")

	if got != "explicit" {
		t.Errorf("payload = %v, want %q", got, "explicit")
	}
}
