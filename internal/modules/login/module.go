// Package login is the sign-in screen: the email/password form, the mocked
// sign-in call behind auth.Gateway and the forgot-password modal.
package login

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/sagelane/vestibule/internal/auth"
	"github.com/sagelane/vestibule/internal/module"
	"github.com/sagelane/vestibule/internal/registry"
)

// GatewayKey exposes the module's auth gateway through the registry, mainly
// so integration tests can reach it.
var GatewayKey = registry.Key[auth.Gateway]("login.gateway")

// Dependencies are the services the login module needs from the outside.
type Dependencies struct {
	Gateway auth.Gateway
}

// Module wires the login screen into the application.
type Module struct {
	module.BaseModule
	gateway auth.Gateway
	handler *Handler
}

// New creates the login module.
func New(deps Dependencies) *Module {
	return &Module{
		gateway: deps.Gateway,
	}
}

// Name doubles as the route prefix, so everything here lives under /login.
func (m *Module) Name() string {
	return "login"
}

func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, GatewayKey, m.gateway)
	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	m.handler = NewHandler(m.gateway)

	group.GET("", m.handler.PageGet)
	group.POST("", m.handler.SubmitPost)
	group.GET("/forgot", m.handler.ForgotGet)
	group.POST("/forgot", m.handler.ForgotPost)
	group.GET("/forgot/close", m.handler.ForgotClose)
	return nil
}
