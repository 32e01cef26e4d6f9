package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// waitForShutdown blocks until an interrupt or terminate signal is received.
func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}

// Shutdown stops the modules, the message bridge and finally the HTTP
// listener. Modules shut down in reverse boot order so consumers stop
// before the services they read from.
func (s *Server) Shutdown(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}

	if err := s.bridge.Close(); err != nil {
		slog.Error("Failed to close message bridge", "error", err)
	}

	// Flush any buffered spans once nothing can produce new ones.
	s.tracingCleanup()

	if err := s.E.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
}
