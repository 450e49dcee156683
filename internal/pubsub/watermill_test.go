package pubsub_test

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/authflow/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Name string `json:"name"`
}

func TestWatermillBridge_TypedRoundTrip(t *testing.T) {
	bus := pubsub.NewWatermillBridge(16)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := pubsub.NewEvent[greeting]("test.greeting")
	received := make(chan greeting, 1)
	err := pubsub.Subscribe(ctx, bus, event, func(_ context.Context, g greeting) error {
		received <- g
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, pubsub.Publish(ctx, bus, event, greeting{Name: "acme"}))

	select {
	case g := <-received:
		assert.Equal(t, "acme", g.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatermillBridge_MetadataSurvives(t *testing.T) {
	bus := pubsub.NewWatermillBridge(16)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	require.NoError(t, bus.Subscribe(ctx, "test.raw", func(_ context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bus.Publish(ctx, pubsub.Message{
		Topic:    "test.raw",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"request_id": "abc"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.raw", msg.Topic)
		assert.Equal(t, []byte("hello"), msg.Payload)
		assert.Equal(t, "abc", msg.Metadata["request_id"])
		_, hasTopic := msg.Metadata["topic"]
		assert.False(t, hasTopic)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}
