// Package mailer simulates outbound mail. It listens for password reset
// events on the bus and "sends" the reset email through whatever sender the
// configuration selected; no real delivery ever happens.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/sagelane/vestibule/internal/email"
	"github.com/sagelane/vestibule/internal/module"
	"github.com/sagelane/vestibule/internal/pubsub"
	"github.com/sagelane/vestibule/internal/registry"
	"github.com/sagelane/vestibule/internal/rendering"
)

// SenderKey exposes the module's email sender through the registry so tests
// can swap in a recording sender and inspect it.
var SenderKey = registry.Key[email.Sender]("mailer.sender")

// Dependencies holds the services the mailer needs to operate.
type Dependencies struct {
	Subscriber pubsub.Subscriber
	Sender     email.Sender
	Renderer   rendering.Renderer
	BaseURL    string
}

// Module wires the mailer into the application. It registers no routes;
// everything happens on the bus.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates the mailer module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "mailer"
}

func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, SenderKey, m.deps.Sender)
	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	sub := NewSubscriber(m.deps.Subscriber, m.deps.Sender, m.deps.Renderer, m.deps.BaseURL)
	if err := sub.Start(ctx); err != nil {
		return fmt.Errorf("failed to start mailer subscriber: %w", err)
	}
	return nil
}

func (m *Module) Shutdown(ctx context.Context) error {
	// Message consumption stops when the server closes the pub/sub bridge.
	slog.Info("Shutting down mailer module")
	return nil
}
