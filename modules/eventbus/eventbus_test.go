package eventbus

import (
	"regexp"
	"testing"
)

func TestPublishInSubscriptionOrder(t *testing.T) {
	bus := New()
	var order []int

	bus.Subscribe("ping", func(any) { order = append(order, 1) })
	bus.Subscribe("ping", func(any) { order = append(order, 2) })
	bus.Subscribe("other", func(any) { order = append(order, 99) })

	bus.Publish("ping", nil)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("dispatch order = %v, want [1 2]", order)
	}
}

func TestDispatchIsDepthFirst(t *testing.T) {
	bus := New()
	var trace []string

	bus.Subscribe("outer", func(any) {
		trace = append(trace, "outer-begin")
		bus.Publish("inner", nil)
		trace = append(trace, "outer-end")
	})
	bus.Subscribe("inner", func(any) {
		trace = append(trace, "inner")
	})

	bus.Publish("outer", nil)

	want := []string{"outer-begin", "inner", "outer-end"}
	for i, step := range want {
		if i >= len(trace) || trace[i] != step {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
}

func TestSubscribeMatch(t *testing.T) {
	bus := New()
	var seen []string

	bus.SubscribeMatch(regexp.MustCompile(`:change$`), func(event string, _ any) {
		seen = append(seen, event)
	})

	bus.Publish("orderFormErrors:change", nil)
	bus.Publish("basket:changed", nil)
	bus.Publish("contactsFormErrors:change", nil)

	if len(seen) != 2 {
		t.Fatalf("matched events = %v, want the two :change events", seen)
	}
	if seen[0] != "orderFormErrors:change" || seen[1] != "contactsFormErrors:change" {
		t.Errorf("matched events = %v", seen)
	}
}

func TestSubscribeAllSeesEverything(t *testing.T) {
	bus := New()
	count := 0
	bus.SubscribeAll(func(string, any) { count++ })

	bus.Publish("a", nil)
	bus.Publish("b", 42)

	if count != 2 {
		t.Errorf("wildcard observer saw %d events, want 2", count)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := New()
	count := 0
	sub := bus.Subscribe("ping", func(any) { count++ })

	bus.Publish("ping", nil)
	bus.Unsubscribe(sub)
	bus.Publish("ping", nil)

	if count != 1 {
		t.Errorf("handler ran %d times, want 1", count)
	}
	if n := bus.HandlerCount("ping"); n != 0 {
		t.Errorf("HandlerCount = %d, want 0", n)
	}
}

func TestPanickingHandlerDoesNotBlockSiblings(t *testing.T) {
	bus := New()
	siblingRan := false

	bus.Subscribe("boom", func(any) { panic("bad handler") })
	bus.Subscribe("boom", func(any) { siblingRan = true })

	bus.Publish("boom", nil)

	if !siblingRan {
		t.Error("sibling handler did not run after a panic")
	}
}

func TestTrigger(t *testing.T) {
	bus := New()
	var got any
	bus.Subscribe("fire", func(data any) { got = data })

	fire := bus.Trigger("fire")
	fire("payload")

	if got != "payload" {
		t.Errorf("payload = %v, want %q", got, "payload")
	}
}
