package events

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// subscription routes events to one listener. A nil type set matches every
// event type and an empty game id matches every game.
type subscription struct {
	listener EventListener
	types    map[EventType]bool
	gameID   string
}

func (s subscription) matches(eventType EventType, gameID string) bool {
	if s.gameID != "" && s.gameID != gameID {
		return false
	}
	return s.types == nil || s.types[eventType]
}

// Bus manages event distribution. One bus can serve many games resolving
// concurrently; listeners run in priority order, then subscription order.
type Bus struct {
	mu   sync.RWMutex
	subs []subscription
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe adds a listener for one event type of every game
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.add(subscription{listener: listener, types: map[EventType]bool{eventType: true}})

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// SubscribeAll adds a listener for every event type of every game
func (b *Bus) SubscribeAll(listener EventListener) {
	b.add(subscription{listener: listener})

	log.Printf("EventBus: Subscribed listener %s to all events with priority %d",
		listener.ID(), listener.Priority())
}

// SubscribeGame adds a listener for every event of one game
func (b *Bus) SubscribeGame(gameID string, listener EventListener) {
	b.add(subscription{listener: listener, gameID: gameID})

	log.Printf("EventBus: Subscribed listener %s to game %s with priority %d",
		listener.ID(), gameID, listener.Priority())
}

func (b *Bus) add(s subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, s)
}

// Unsubscribe stops delivering one event type to a listener. Subscriptions
// left without any event type are dropped.
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.subs[:0]
	for _, s := range b.subs {
		if s.listener.ID() == listenerID {
			if s.types == nil {
				s.types = make(map[EventType]bool)
				for _, t := range AllEventTypes() {
					s.types[t] = true
				}
			}
			delete(s.types, eventType)
			if len(s.types) == 0 {
				continue
			}
		}
		kept = append(kept, s)
	}
	b.subs = kept

	log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
}

// Emit sends an event to every matching listener. A cancelled event stops
// propagating; a failing listener stops it too and its error is returned.
func (b *Bus) Emit(event Event) error {
	listeners := b.matching(event.GetType(), event.GetGameID())

	log.Printf("EventBus: Emitting event %s for game %s with %d listeners",
		event.GetType(), event.GetGameID(), len(listeners))

	for _, listener := range listeners {
		if event.IsCancelled() {
			log.Printf("EventBus: Event %s cancelled, stopping propagation", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed: %w", listener.ID(), err)
		}
	}

	return nil
}

func (b *Bus) matching(eventType EventType, gameID string) []EventListener {
	b.mu.RLock()
	var listeners []EventListener
	for _, s := range b.subs {
		if s.matches(eventType, gameID) {
			listeners = append(listeners, s.listener)
		}
	}
	b.mu.RUnlock()

	sort.SliceStable(listeners, func(i, j int) bool {
		return listeners[i].Priority() < listeners[j].Priority()
	})
	return listeners
}

// ListenerCount returns the number of listeners an event type reaches in any game
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, s := range b.subs {
		if s.types == nil || s.types[eventType] {
			count++
		}
	}
	return count
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = nil
	log.Printf("EventBus: Cleared all listeners")
}
