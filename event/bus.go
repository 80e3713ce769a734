package event

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Handler processes specific event types
// Services implement this interface to receive published events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously on the publishing goroutine
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The bus uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a plain function to a single-type subscription
type HandlerFunc func(ev GameEvent)

type subscription struct {
	id uint64
	fn HandlerFunc
}

// Bus dispatches published events to subscribers
//
// Architecture:
//   - Synchronous dispatch on the publisher's goroutine
//   - Multiple handlers can subscribe to the same event type
//   - Handlers are invoked in registration order
//   - A panicking handler is logged and skipped, remaining handlers still run
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	now      func() time.Time
}

var defaultBus = NewBus()

// Default returns the process-wide bus
func Default() *Bus {
	return defaultBus
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]subscription),
		now:      time.Now,
	}
}

// Subscribe adds fn for events of type t and returns its cancel func
func (b *Bus) Subscribe(t EventType, fn HandlerFunc) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[t] = append(b.handlers[t], subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(t, id) })
	}
}

// SubscribeName subscribes by registered event name (e.g. "fortuneRevealed")
func (b *Bus) SubscribeName(name string, fn HandlerFunc) (func(), error) {
	t, ok := GetEventType(name)
	if !ok {
		return nil, fmt.Errorf("unknown event name %q", name)
	}
	return b.Subscribe(t, fn), nil
}

// Register adds a handler for its declared event types
// The returned func removes every subscription made for the handler
func (b *Bus) Register(h Handler) (unregister func()) {
	types := h.EventTypes()
	cancels := make([]func(), 0, len(types))
	for _, t := range types {
		cancels = append(cancels, b.Subscribe(t, h.HandleEvent))
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

// Publish delivers ev to every subscriber of ev.Type
// A zero At is stamped with the bus clock
func (b *Bus) Publish(ev GameEvent) {
	if ev.At.IsZero() {
		ev.At = b.now()
	}

	b.mu.RLock()
	subs := b.handlers[ev.Type]
	// Copy so handlers may (un)subscribe during dispatch
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	b.mu.RUnlock()

	for _, s := range snapshot {
		b.dispatch(s, ev)
	}
}

func (b *Bus) dispatch(s subscription, ev GameEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event bus: handler %d for %s panicked: %v", s.id, ev.Type, r)
		}
	}()
	s.fn(ev)
}

// HasHandlers returns true if any handlers are registered for the given type
func (b *Bus) HasHandlers(t EventType) bool {
	return b.HandlerCount(t) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (b *Bus) HandlerCount(t EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[t])
}

func (b *Bus) remove(t EventType, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[t]
	for i, s := range subs {
		if s.id == id {
			// Fresh slice so in-flight snapshots stay intact
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, t)
			} else {
				b.handlers[t] = next
			}
			return
		}
	}
}
