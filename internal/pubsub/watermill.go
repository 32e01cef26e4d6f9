package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Bridge implements Publisher and Subscriber on top of watermill's GoChannel,
// an in-memory bus. Everything stays inside the process; nothing is durable.
type Bridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
}

// Metadata key used to carry the Message topic through watermill.
const metaKeyTopic = "topic"

// tracerName identifies this package's spans.
const tracerName = "vestibule-pubsub"

// NewBridge initializes the in-memory pub/sub system without tracing.
func NewBridge() *Bridge {
	return NewBridgeWithTracer(noop.NewTracerProvider().Tracer(tracerName))
}

// NewBridgeWithTracer initializes the in-memory pub/sub system with spans
// around every publish and every handled message.
func NewBridgeWithTracer(tracer trace.Tracer) *Bridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{},
		logger,
	)

	return &Bridge{
		pub:    goChannel,
		sub:    goChannel,
		tracer: tracer,
	}
}

// toWatermill converts our Message to a watermill message.
func toWatermill(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)

	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}

	return wmMsg
}

// fromWatermill converts a watermill message back to our Message.
func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}

	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// spanAttributes describes a message the way the messaging semantic
// conventions expect.
func spanAttributes(operation, topic string, wmMsg *message.Message) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.message_id", wmMsg.UUID),
		attribute.Int("messaging.message_payload_size_bytes", len(wmMsg.Payload)),
	}
}

// Publish implements the Publisher interface. Each publish runs inside its
// own span; the span context rides on the outgoing message for transports
// that carry it across.
func (b *Bridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := toWatermill(msg)

	spanCtx, span := b.tracer.Start(ctx, fmt.Sprintf("pubsub.publish.%s", msg.Topic),
		trace.WithAttributes(spanAttributes("publish", msg.Topic, wmMsg)...),
	)
	defer span.End()
	wmMsg.SetContext(spanCtx)

	if err := b.pub.Publish(msg.Topic, wmMsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Subscribe implements the Subscriber interface. Message processing runs in
// a background goroutine; the call returns as soon as the subscription is
// active.
func (b *Bridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			b.handle(topic, wmMsg, handler)
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// handle processes one message inside its own span and always acknowledges.
func (b *Bridge) handle(topic string, wmMsg *message.Message, handler Handler) {
	msgCtx := wmMsg.Context()
	if msgCtx == nil {
		msgCtx = context.Background()
	}

	spanCtx, span := b.tracer.Start(msgCtx, fmt.Sprintf("pubsub.process.%s", topic),
		trace.WithAttributes(spanAttributes("process", topic, wmMsg)...),
	)
	defer span.End()

	if err := handler(spanCtx, fromWatermill(wmMsg)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
		// GoChannel redelivers nacked messages forever, which would wedge
		// the subscription on one bad message. Acknowledge and move on.
		wmMsg.Ack()
		return
	}
	wmMsg.Ack()
}

// Close shuts down the bridge and stops message consumption.
func (b *Bridge) Close() error {
	return b.sub.Close()
}
