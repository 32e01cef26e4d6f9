package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the core application routes and boots every module
// so it can claim its own route group.
func (s *Server) RegisterRoutes() {
	// The application has no home page of its own; everything starts at the
	// sign-in screen.
	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/login")
	})

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	s.bootModules(context.Background())
}

// bootModules runs the boot phase of every registered module. Each module
// owns the route group named after it, so the login module serves /login
// and the mailer (which registers no routes) just starts its subscriber.
func (s *Server) bootModules(ctx context.Context) {
	for _, m := range s.modules {
		group := s.E.Group("/" + m.Name())
		if err := m.Boot(ctx, group, s.reg); err != nil {
			slog.Error("Failed to boot module", "module", m.Name(), "error", err)
			os.Exit(1)
		}
	}
}
