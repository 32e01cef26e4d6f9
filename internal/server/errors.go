package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the global HTTP error handler. Expected HTTP
// errors (404s and friends) keep Echo's default treatment; anything else is
// an unhandled failure that gets logged with a stack trace before the client
// receives a plain 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		slog.Error("Internal Server Error (Unhandled)",
			"error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"stack_trace", string(debug.Stack()),
		)

		if c.Response().Committed {
			return
		}
		e.DefaultHTTPErrorHandler(echo.NewHTTPError(http.StatusInternalServerError), c)
	}
}
