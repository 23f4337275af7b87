package broadcast

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus()

	calls := 0
	bus.Subscribe(ActionRestoreFloatingButton, func() { calls++ })

	bus.Publish(ActionRestoreFloatingButton)
	bus.Publish(ActionRestoreFloatingButton)

	assert.Equal(t, 2, calls)
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()

	// Must not panic or block
	bus.Publish("unknown_action")

	assert.Equal(t, 0, bus.SubscriberCount("unknown_action"))
}

func TestBusFanOutInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var got []int
	bus.Subscribe("action", func() { got = append(got, 1) })
	bus.Subscribe("action", func() { got = append(got, 2) })
	bus.Subscribe("action", func() { got = append(got, 3) })

	bus.Publish("action")

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	token := bus.Subscribe("action", func() { calls++ })
	require.NotEmpty(t, token)

	bus.Publish("action")
	bus.Unsubscribe("action", token)
	bus.Publish("action")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.SubscriberCount("action"))

	// Double unsubscribe and unknown tokens are no-ops
	bus.Unsubscribe("action", token)
	bus.Unsubscribe("action", "no-such-token")
	bus.Unsubscribe("no-such-action", token)
}

func TestBusTokensAreUnique(t *testing.T) {
	bus := NewBus()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token := bus.Subscribe("action", func() {})
		require.False(t, seen[token], "token %s issued twice", token)
		seen[token] = true
	}

	assert.Equal(t, 50, bus.SubscriberCount("action"))
}

func TestBusActionsAreIndependent(t *testing.T) {
	bus := NewBus()

	restoreCalls := 0
	otherCalls := 0
	bus.Subscribe(ActionRestoreFloatingButton, func() { restoreCalls++ })
	bus.Subscribe("other_action", func() { otherCalls++ })

	bus.Publish(ActionRestoreFloatingButton)

	assert.Equal(t, 1, restoreCalls)
	assert.Equal(t, 0, otherCalls)
}

func TestBusSubscribeDuringPublish(t *testing.T) {
	bus := NewBus()

	lateCalls := 0
	bus.Subscribe("action", func() {
		// Registered mid-publish; must not receive the in-flight publish
		bus.Subscribe("action", func() { lateCalls++ })
	})

	bus.Publish("action")
	assert.Equal(t, 0, lateCalls)

	bus.Publish("action")
	assert.Equal(t, 1, lateCalls)
}

func TestBusConcurrentAccess(t *testing.T) {
	bus := NewBus()

	var calls sync.WaitGroup
	calls.Add(20)
	bus.Subscribe("action", func() { calls.Done() })

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Publish("action")
		}()
		go func() {
			defer wg.Done()
			token := bus.Subscribe("scratch", func() {})
			bus.Unsubscribe("scratch", token)
		}()
	}

	wg.Wait()
	calls.Wait()

	assert.Equal(t, 0, bus.SubscriberCount("scratch"))
}
