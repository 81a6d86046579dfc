package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEvent EventType = "test.event"

type testPayload struct {
	Value int
}

func TestEventBus_Publish(t *testing.T) {
	t.Run("should call handlers in registration order", func(t *testing.T) {
		bus := NewEventBus()
		var order []int
		bus.Subscribe(testEvent, func(e Event) error {
			order = append(order, 1)
			return nil
		})
		bus.Subscribe(testEvent, func(e Event) error {
			order = append(order, 2)
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, testPayload{Value: 7}))

		// then
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("should keep dispatching after a handler error", func(t *testing.T) {
		bus := NewEventBus()
		called := false
		bus.Subscribe(testEvent, func(e Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(testEvent, func(e Event) error {
			called = true
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, nil))

		// then
		assert.Error(t, err)
		assert.True(t, called)
	})

	t.Run("should recover a panicking handler", func(t *testing.T) {
		bus := NewEventBus()
		bus.Subscribe(testEvent, func(e Event) error {
			panic("oops")
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, nil))

		// then
		assert.ErrorContains(t, err, "panic")
	})
}

func TestSubscribeTyped(t *testing.T) {
	t.Run("should deliver the typed payload", func(t *testing.T) {
		bus := NewEventBus()
		var received []testPayload
		SubscribeTyped(bus, testEvent, func(ctx context.Context, data testPayload) error {
			received = append(received, data)
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, testPayload{Value: 42}))

		// then
		assert.NoError(t, err)
		assert.Equal(t, []testPayload{{Value: 42}}, received)
	})

	t.Run("should skip payloads of another type", func(t *testing.T) {
		bus := NewEventBus()
		called := false
		SubscribeTyped(bus, testEvent, func(ctx context.Context, data testPayload) error {
			called = true
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, "not a payload"))

		// then
		assert.NoError(t, err)
		assert.False(t, called)
	})
}
