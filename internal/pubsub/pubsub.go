package pubsub

import (
	"context"
)

// Message is the envelope passed between modules on the bus.
type Message struct {
	// Topic identifies the subject the message belongs to
	// (e.g., "auth.password_reset.requested").
	Topic string
	// Payload contains the raw message data, usually JSON.
	Payload []byte
	// Metadata can carry arbitrary key-value pairs for context.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the pub/sub system.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the pub/sub
// system.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages
	// with the handler. It returns once the subscription is active.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
