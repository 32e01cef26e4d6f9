package app

import (
	"github.com/sagelane/vestibule/internal/auth"
	"github.com/sagelane/vestibule/internal/email"
	"github.com/sagelane/vestibule/internal/module"
	"github.com/sagelane/vestibule/internal/modules/login"
	"github.com/sagelane/vestibule/internal/modules/mailer"
	"github.com/sagelane/vestibule/internal/pubsub"
	"github.com/sagelane/vestibule/internal/rendering"
)

// Dependencies holds the core services required by the application's modules.
// This struct is passed from the server entrypoint to wire up the modules.
type Dependencies struct {
	Gateway    auth.Gateway
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Sender     email.Sender
	BaseURL    string
}

// NewModules creates the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		// Add new application modules here.
		login.New(login.Dependencies{
			Gateway: deps.Gateway,
		}),
		mailer.New(mailer.Dependencies{
			Subscriber: deps.Subscriber,
			Sender:     deps.Sender,
			Renderer:   deps.Renderer,
			BaseURL:    deps.BaseURL,
		}),
	}
}
