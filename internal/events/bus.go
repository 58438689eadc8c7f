package events

import (
	"fmt"
	"log"
	"slices"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus delivers character events to listeners synchronously. Lower priority
// values run first; listeners with equal priority run in subscription order.
type Bus struct {
	mu     sync.RWMutex
	routes map[EventType][]EventListener
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{routes: map[EventType][]EventListener{}}
}

// Subscribe routes events of eventType to listener
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	route := b.routes[eventType]
	at := len(route)
	for i, l := range route {
		if l.Priority() > listener.Priority() {
			at = i
			break
		}
	}
	b.routes[eventType] = slices.Insert(route, at, listener)

	log.Printf("EventBus: %s listening for %s (priority %d)", listener.ID(), eventType, listener.Priority())
}

// SubscribeAll routes several event types to listener
func (b *Bus) SubscribeAll(listener EventListener, eventTypes ...EventType) {
	for _, eventType := range eventTypes {
		b.Subscribe(eventType, listener)
	}
}

// Unsubscribe removes the listener with listenerID from eventType
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.routes[eventType] = slices.DeleteFunc(b.routes[eventType], func(l EventListener) bool {
		return l.ID() == listenerID
	})
}

// Emit hands event to each listener in order. It stops at the first listener
// error or once a listener cancels the event.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	route := slices.Clone(b.routes[event.GetType()])
	b.mu.RUnlock()

	for _, listener := range route {
		if event.IsCancelled() {
			log.Printf("EventBus: %s for %s cancelled before %s", event.GetType(), event.GetCharacterID(), listener.ID())
			return nil
		}
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}
	return nil
}
