package logging

import (
	"log/slog"
	"os"
)

// New initializes the application logger and installs it as slog's default.
// The output format is chosen by the LOG_FORMAT environment variable:
// "json" for machine-readable logs, anything else falls back to text with
// source locations, which is friendlier during development.
func New() {
	logFormat := os.Getenv("LOG_FORMAT")

	var handler slog.Handler
	switch logFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})
	}

	slog.SetDefault(slog.New(handler))
}
