package server

import (
	"context"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sagelane/vestibule/internal/app"
	"github.com/sagelane/vestibule/internal/auth"
	"github.com/sagelane/vestibule/internal/config"
	"github.com/sagelane/vestibule/internal/email"
	"github.com/sagelane/vestibule/internal/logging"
	appmiddleware "github.com/sagelane/vestibule/internal/middleware"
	"github.com/sagelane/vestibule/internal/module"
	"github.com/sagelane/vestibule/internal/pubsub"
	"github.com/sagelane/vestibule/internal/registry"
	"github.com/sagelane/vestibule/internal/rendering"
	"github.com/sagelane/vestibule/internal/validation"
	"github.com/sagelane/vestibule/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	reg            *registry.Registry
	bridge         *pubsub.Bridge
	gateway        auth.Gateway
	sender         email.Sender
	modules        []module.Module
	tracingCleanup func()
}

// New assembles a fully configured Server: core services, the Echo instance
// with its middleware chain, and every application module registered with
// the service registry. Routes are not set up until RegisterRoutes is
// called, which keeps the two phases separable in tests.
func New() *Server {
	// Load environment variables from .env file if it exists.
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet, so the standard logger carries this
		// one startup message.
		log.Println("No .env file found, relying on environment variables")
	}

	logging.New() // Initialize the structured logger
	cfg := config.New()

	// Tracing is a no-op unless PUBSUB_TRACING_ENABLED switches it on.
	tracer, tracingCleanup, err := pubsub.SetupTracing(context.Background(), pubsub.LoadTracingConfigFromEnv())
	if err != nil {
		slog.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	bridge := pubsub.NewBridgeWithTracer(tracer)

	sender, err := email.NewService(cfg)
	if err != nil {
		slog.Error("Failed to initialize email service", "error", err)
		os.Exit(1)
	}

	gateway := auth.NewMockGateway(
		auth.WithSignInDelay(cfg.GetSignInDelay()),
		auth.WithResetDelay(cfg.GetResetDelay()),
		auth.WithPublisher(bridge),
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.RequestLogger)

	// Configure and use session middleware. The session only carries
	// one-shot flash messages for the non-htmx fallback, so the cookie can
	// be short-lived.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	renderer := rendering.NewUniversalRenderer()
	e.Renderer = renderer
	e.Validator = validation.NewEchoValidator()

	setupErrorHandling(e)

	// Serve the embedded static assets.
	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		slog.Error("Failed to mount static assets", "error", err)
		os.Exit(1)
	}
	e.StaticFS("/static", staticFS)

	// Wire up the application modules against the populated registry.
	reg := registry.New(cfg)
	modules := app.NewModules(app.Dependencies{
		Gateway:    gateway,
		Subscriber: bridge,
		Renderer:   renderer,
		Sender:     sender,
		BaseURL:    cfg.GetAppBaseURL(),
	})
	for _, m := range modules {
		if err := m.Register(reg); err != nil {
			slog.Error("Failed to register module", "module", m.Name(), "error", err)
			os.Exit(1)
		}
	}

	return &Server{
		E:              e,
		Cfg:            cfg,
		reg:            reg,
		bridge:         bridge,
		gateway:        gateway,
		sender:         sender,
		modules:        modules,
		tracingCleanup: tracingCleanup,
	}
}

// Registry is a getter for the server's service registry, useful for testing.
func (s *Server) Registry() *registry.Registry {
	return s.reg
}

// Gateway is a getter for the server's authentication gateway, useful for testing.
func (s *Server) Gateway() auth.Gateway {
	return s.gateway
}

// Sender is a getter for the server's email sender, useful for testing.
func (s *Server) Sender() email.Sender {
	return s.sender
}
