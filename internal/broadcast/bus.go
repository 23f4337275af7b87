package broadcast

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Broadcast actions
const (
	// ActionRestoreFloatingButton is published when the transient translator
	// overlay closes, telling the overlay coordinator to re-show the button.
	ActionRestoreFloatingButton = "RESTORE_FLOATING_BUTTON"
)

// Handler is invoked once per published occurrence of a subscribed action
type Handler func()

// Bus is an in-process broadcast bus keyed by action name. Components
// subscribe a handler per action and receive every publish until they
// unsubscribe. Handlers run on the publisher's goroutine, outside the bus
// lock, in subscription order.
type Bus struct {
	mu    sync.RWMutex
	subs  map[string]map[string]Handler
	order map[string][]string
}

// NewBus creates an empty broadcast bus
func NewBus() *Bus {
	return &Bus{
		subs:  make(map[string]map[string]Handler),
		order: make(map[string][]string),
	}
}

// Subscribe registers handler for action and returns the token needed to
// unsubscribe
func (b *Bus) Subscribe(action string, handler Handler) string {
	token := uuid.New().String()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[action] == nil {
		b.subs[action] = make(map[string]Handler)
	}
	b.subs[action][token] = handler
	b.order[action] = append(b.order[action], token)
	return token
}

// Unsubscribe removes the subscription identified by token. Unknown actions
// and tokens are ignored, so a double unsubscribe is safe.
func (b *Bus) Unsubscribe(action, token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.subs[action]
	if !ok {
		return
	}
	if _, ok := handlers[token]; !ok {
		return
	}
	delete(handlers, token)

	tokens := b.order[action]
	for i, t := range tokens {
		if t == token {
			b.order[action] = append(tokens[:i], tokens[i+1:]...)
			break
		}
	}
}

// Publish delivers action to every current subscriber. The subscriber set is
// snapshotted under the read lock, so handlers may subscribe or unsubscribe
// without deadlocking.
func (b *Bus) Publish(action string) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[action]))
	for _, token := range b.order[action] {
		if h, ok := b.subs[action][token]; ok {
			handlers = append(handlers, h)
		}
	}
	b.mu.RUnlock()

	if len(handlers) == 0 {
		log.Printf("No subscribers for broadcast action %s", action)
		return
	}
	for _, h := range handlers {
		h()
	}
}

// SubscriberCount returns the number of active subscriptions for action
func (b *Bus) SubscriberCount(action string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[action])
}
