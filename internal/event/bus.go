// Package event provides the synchronous publish/subscribe bus that decouples
// store mutation from presentation. Delivery is same-tick and in registration
// order; there is no replay for late subscribers.
package event

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Event is a named payload passing through the bus. Each topic carries one
// fixed payload type; use On[T] to get the assertion for free.
type Event struct {
	Topic   string
	Payload any
}

// Handler consumes one event. A handler error does not stop delivery to the
// remaining handlers; Emit reports all of them after the full pass.
type Handler func(Event) error

// Subscription identifies a registered handler so it can be removed.
type Subscription string

type entry struct {
	id      Subscription
	pattern string
	handler Handler
}

// Bus is the process-wide event bus. The zero value is not usable; call New.
type Bus struct {
	mu sync.Mutex
	// exact-topic handlers, per topic, in registration order
	exact map[string][]entry
	// wildcard handlers ("*" or "prefix*"), in registration order
	patterns []entry
}

func New() *Bus {
	return &Bus{exact: make(map[string][]entry)}
}

// On registers a handler for topic. A topic of "*" matches every event; a
// topic ending in "*" matches by prefix ("view:*"). Exact handlers run before
// pattern handlers, each group in registration order.
func (b *Bus) On(topic string, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	e := entry{id: Subscription(uuid.NewString()), pattern: topic, handler: h}
	if isPattern(topic) {
		b.patterns = append(b.patterns, e)
	} else {
		b.exact[topic] = append(b.exact[topic], e)
	}
	return e.id
}

// Off removes one previously registered handler. Unknown subscriptions are
// ignored.
func (b *Bus) Off(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for topic, entries := range b.exact {
		if filtered, removed := drop(entries, sub); removed {
			b.exact[topic] = filtered
			return
		}
	}
	if filtered, removed := drop(b.patterns, sub); removed {
		b.patterns = filtered
	}
}

// Emit delivers the event to every matching handler synchronously. All
// handlers run even when earlier ones fail; the collected errors come back
// joined. Store mutation is visible to handlers by the time they run.
func (b *Bus) Emit(topic string, payload any) error {
	b.mu.Lock()
	matched := make([]entry, 0, len(b.exact[topic])+len(b.patterns))
	matched = append(matched, b.exact[topic]...)
	for _, e := range b.patterns {
		if matchPattern(e.pattern, topic) {
			matched = append(matched, e)
		}
	}
	b.mu.Unlock()

	ev := Event{Topic: topic, Payload: payload}
	var errs []error
	for _, e := range matched {
		if err := e.handler(ev); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}

// On registers a handler that receives the topic's typed payload. A payload
// of the wrong type is a wiring bug and surfaces as a handler error.
func On[T any](b *Bus, topic string, fn func(T) error) Subscription {
	return b.On(topic, func(e Event) error {
		v, ok := e.Payload.(T)
		if !ok {
			return fmt.Errorf("payload is %T, want %T", e.Payload, v)
		}
		return fn(v)
	})
}

func isPattern(topic string) bool {
	return strings.HasSuffix(topic, "*")
}

func matchPattern(pattern, topic string) bool {
	if pattern == "*" {
		return true
	}
	return strings.HasPrefix(topic, strings.TrimSuffix(pattern, "*"))
}

func drop(entries []entry, sub Subscription) ([]entry, bool) {
	for i, e := range entries {
		if e.id == sub {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}
