// Package eventbus provides the in-memory publish/subscribe bus the
// storefront session runs on, plus the observable-entity base the
// stateful domain objects compose with.
package eventbus

import (
	"log"
	"regexp"
	"sync"
)

// Handler receives the payload of an event it subscribed to.
type Handler func(data any)

// WildcardHandler additionally receives the event name; used for
// family (pattern) subscriptions and diagnostics.
type WildcardHandler func(event string, data any)

// Subscription identifies a registered handler for Unsubscribe.
type Subscription uint64

type subscription struct {
	id      Subscription
	matches func(event string) bool
	handle  WildcardHandler
}

// Bus dispatches events synchronously, in subscription order, on the
// publisher's goroutine. Dispatch is re-entrant: a handler that
// publishes runs the nested event's handlers to completion before
// control returns to the outer publish. A panicking handler is logged
// and does not block its siblings.
type Bus struct {
	mu     sync.Mutex
	subs   []subscription
	nextID Subscription
}

// New creates a new Bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for one exact event name.
func (b *Bus) Subscribe(event string, h Handler) Subscription {
	return b.add(
		func(name string) bool { return name == event },
		func(_ string, data any) { h(data) },
	)
}

// SubscribeMatch registers a handler for every event whose name
// matches the pattern, e.g. all ":change" events.
func (b *Bus) SubscribeMatch(pattern *regexp.Regexp, h WildcardHandler) Subscription {
	return b.add(pattern.MatchString, h)
}

// SubscribeAll registers a wildcard observer receiving every event.
func (b *Bus) SubscribeAll(h WildcardHandler) Subscription {
	return b.add(func(string) bool { return true }, h)
}

// Unsubscribe removes a previously registered handler. Unknown
// subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.subs[:0]
	for _, s := range b.subs {
		if s.id != sub {
			kept = append(kept, s)
		}
	}
	b.subs = kept
}

// Publish delivers the event to every matching handler before
// returning. The subscription list is snapshotted first, so a handler
// subscribing or unsubscribing mid-dispatch affects later publishes
// only.
func (b *Bus) Publish(event string, data any) {
	b.mu.Lock()
	matched := make([]subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.matches(event) {
			matched = append(matched, s)
		}
	}
	b.mu.Unlock()

	for _, s := range matched {
		b.dispatch(s, event, data)
	}
}

func (b *Bus) dispatch(s subscription, event string, data any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[eventbus] handler panic on %s: %v", event, r)
		}
	}()
	s.handle(event, data)
}

// Trigger returns a closure that publishes the named event with
// whatever payload it is handed, for wiring into markup listeners.
func (b *Bus) Trigger(event string) func(data any) {
	return func(data any) {
		b.Publish(event, data)
	}
}

// HandlerCount returns the number of handlers matching the event name.
func (b *Bus) HandlerCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, s := range b.subs {
		if s.matches(event) {
			n++
		}
	}
	return n
}

func (b *Bus) add(matches func(string) bool, h WildcardHandler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs = append(b.subs, subscription{id: b.nextID, matches: matches, handle: h})
	return b.nextID
}
