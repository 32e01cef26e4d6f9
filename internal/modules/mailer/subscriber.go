package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/sagelane/vestibule/internal/auth"
	"github.com/sagelane/vestibule/internal/email"
	"github.com/sagelane/vestibule/internal/pubsub"
	"github.com/sagelane/vestibule/internal/rendering"
)

const resetSubject = "Reset your password"

// Subscriber turns password reset events into outgoing emails.
type Subscriber struct {
	subscriber pubsub.Subscriber
	sender     email.Sender
	renderer   rendering.Renderer
	baseURL    string
}

// NewSubscriber creates a subscriber for the reset topic.
func NewSubscriber(sub pubsub.Subscriber, sender email.Sender, renderer rendering.Renderer, baseURL string) *Subscriber {
	return &Subscriber{
		subscriber: sub,
		sender:     sender,
		renderer:   renderer,
		baseURL:    baseURL,
	}
}

// Start subscribes to the reset topic. It returns once the subscription is
// active; message handling runs on the bridge's goroutines.
func (s *Subscriber) Start(ctx context.Context) error {
	slog.Info("Starting mailer subscriber", "topic", auth.TopicPasswordResetRequested.Name())
	return s.subscriber.Subscribe(ctx, auth.TopicPasswordResetRequested.Name(), s.handleResetRequested)
}

// handleResetRequested renders and "sends" one reset email per event. A
// returned error is logged by the bus; nothing propagates back to the UI.
func (s *Subscriber) handleResetRequested(ctx context.Context, msg pubsub.Message) error {
	var evt auth.ResetRequested
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		slog.Error("Failed to unmarshal reset event", "error", err, "payload", string(msg.Payload))
		return err
	}

	body, err := s.renderer.RenderComponent(ctx, resetEmail(s.baseURL, evt))
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}

	if err := s.sender.Send(evt.Email, resetSubject, string(body)); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	slog.Info("Password reset email sent", "request_id", evt.RequestID)
	return nil
}

// resetEmail builds the HTML body. The link is as mocked as the rest of the
// flow; it points back at the sign-in page, tagged with the request ID.
func resetEmail(baseURL string, evt auth.ResetRequested) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		link := fmt.Sprintf("%s/login?reset=%s", baseURL, evt.RequestID)
		_, err := fmt.Fprintf(w,
			"<p>A password reset was requested for this address.</p>"+
				`<p><a href="%s">Reset your password</a></p>`+
				"<p>If this wasn't you, you can safely ignore this email.</p>",
			link)
		return err
	})
}
