package pubsub_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelane/vestibule/internal/pubsub"
)

func TestBridgeRoundTrip(t *testing.T) {
	bridge := pubsub.NewBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	err := bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err, "Subscribe should succeed")

	sent := pubsub.Message{
		Topic:    "test.topic",
		Payload:  []byte(`{"hello":"world"}`),
		Metadata: map[string]string{"request_id": "abc123"},
	}
	require.NoError(t, bridge.Publish(ctx, sent), "Publish should succeed")

	select {
	case msg := <-received:
		assert.Equal(t, sent.Topic, msg.Topic, "Topic should survive the round trip")
		assert.Equal(t, sent.Payload, msg.Payload, "Payload should survive the round trip")
		assert.Equal(t, "abc123", msg.Metadata["request_id"], "Metadata should survive the round trip")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestBridgeTopicsAreIsolated(t *testing.T) {
	bridge := pubsub.NewBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	err := bridge.Subscribe(ctx, "topic.a", func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: "topic.b", Payload: []byte("other")}))

	select {
	case msg := <-received:
		t.Fatalf("received message from unrelated topic: %q", msg.Topic)
	case <-time.After(200 * time.Millisecond):
		// Nothing arrived, as expected.
	}
}

func TestBridgeHandlerErrorDoesNotStopConsumption(t *testing.T) {
	bridge := pubsub.NewBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 2)
	err := bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		if string(msg.Payload) == "bad" {
			return assert.AnError
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: "test.topic", Payload: []byte("bad")}))

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for first message")
	}

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: "test.topic", Payload: []byte("good")}))

	select {
	case msg := <-received:
		assert.Equal(t, "good", string(msg.Payload), "Consumption should continue after a handler error")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for second message")
	}
}
