// Package rendering turns UI components into HTML. The handlers build pages
// and HTMX fragments from gomponents nodes, while the mailer renders email
// bodies as templ components; the renderer accepts both.
package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer is the contract for rendering any supported component type.
type Renderer interface {
	// RenderComponent renders a component to bytes, for HTMX fragments and
	// email bodies.
	RenderComponent(ctx context.Context, component interface{}) ([]byte, error)

	// RenderPage streams a full page to an HTTP response.
	RenderPage(c echo.Context, status int, component interface{}) error
}

// UniversalRenderer renders both templ components and anything that exposes
// the gomponents Render(io.Writer) shape.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the structural interface gomponents.Node satisfies.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (ur *UniversalRenderer) render(ctx context.Context, component interface{}, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)

	case gomponentNode:
		return c.Render(w)

	default:
		return fmt.Errorf("unsupported component type %T: must be templ.Component or implement Render(io.Writer) error", component)
	}
}

// RenderComponent implements the Renderer interface.
func (ur *UniversalRenderer) RenderComponent(ctx context.Context, component interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := ur.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface for full HTTP responses. The
// Content-Type header goes out before the status line commits the response.
func (ur *UniversalRenderer) RenderPage(c echo.Context, status int, component interface{}) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTML)
	c.Response().WriteHeader(status)

	if err := ur.render(c.Request().Context(), component, c.Response().Writer); err != nil {
		c.Logger().Error("Failed to stream component to response writer:", err)
		return err
	}
	return nil
}

// Render implements the echo.Renderer interface so handlers can use
// c.Render(status, name, component); the component travels in the data
// parameter and the name is ignored.
func (ur *UniversalRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTML)
	}

	return ur.render(c.Request().Context(), data, w)
}
