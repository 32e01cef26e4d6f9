package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sagelane/vestibule/internal/config"
	"github.com/sagelane/vestibule/internal/pubsub"
	"github.com/sagelane/vestibule/internal/validation"
)

// Demo credentials the mock gateway accepts, and the placeholder token it
// hands back. These exist so the UI has one happy path to exercise.
const (
	DemoEmail    = "user@example.com"
	DemoPassword = "Password123!"
	MockToken    = "mock-jwt-token"
)

// Messages the mock gateway returns on expected failures.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgInvalidResetEmail  = "Please provide a valid email"
)

// MockGateway simulates an authentication backend. Each call sleeps for a
// configured delay to mimic a network round trip, then answers from the demo
// credentials above.
type MockGateway struct {
	signInDelay time.Duration
	resetDelay  time.Duration
	publisher   pubsub.Publisher
}

// Option configures a MockGateway.
type Option func(*MockGateway)

// WithSignInDelay overrides the simulated sign-in latency.
func WithSignInDelay(d time.Duration) Option {
	return func(g *MockGateway) { g.signInDelay = d }
}

// WithResetDelay overrides the simulated reset latency.
func WithResetDelay(d time.Duration) Option {
	return func(g *MockGateway) { g.resetDelay = d }
}

// WithPublisher makes the gateway publish a ResetRequested event for every
// accepted reset request. Without a publisher the event is simply skipped.
func WithPublisher(p pubsub.Publisher) Option {
	return func(g *MockGateway) { g.publisher = p }
}

// NewMockGateway creates a gateway with the default simulated latencies.
func NewMockGateway(opts ...Option) *MockGateway {
	g := &MockGateway{
		signInDelay: config.DefaultSignInDelay,
		resetDelay:  config.DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SignIn accepts exactly the demo credentials. The delay always runs to
// completion; the UI offers no way to abort a submission.
func (g *MockGateway) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	time.Sleep(g.signInDelay)

	if email == DemoEmail && password == DemoPassword {
		return SignInResult{OK: true, Token: MockToken}, nil
	}
	return SignInResult{Message: MsgInvalidCredentials}, nil
}

// RequestReset accepts any well-formed address. The answer for a well-formed
// address never varies with whether an account exists.
func (g *MockGateway) RequestReset(ctx context.Context, email string) (ResetResult, error) {
	time.Sleep(g.resetDelay)

	if !validation.IsValidEmail(email) {
		return ResetResult{Message: MsgInvalidResetEmail}, nil
	}

	g.publishResetRequested(ctx, email)
	return ResetResult{OK: true}, nil
}

// publishResetRequested is best-effort. A bus failure is logged and never
// reaches the user; the reset answer must stay neutral no matter what.
func (g *MockGateway) publishResetRequested(ctx context.Context, email string) {
	if g.publisher == nil {
		return
	}

	evt := ResetRequested{
		RequestID:   uuid.NewString(),
		Email:       email,
		RequestedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		slog.Error("Failed to encode reset event", "error", err)
		return
	}

	msg := pubsub.Message{
		Topic:    TopicPasswordResetRequested.Name(),
		Payload:  payload,
		Metadata: map[string]string{"request_id": evt.RequestID},
	}
	if err := g.publisher.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish reset event", "request_id", evt.RequestID, "error", err)
	}
}
