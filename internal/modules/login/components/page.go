package components

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/sagelane/vestibule/internal/forms"
	"github.com/sagelane/vestibule/web/src/templates/layouts"
	"github.com/sagelane/vestibule/web/src/templates/partials"
)

// Page is the full sign-in page: base layout, login card and the modal root.
// A non-nil modal renders the page with the dialog already open, which is
// how GET /login/forgot degrades without JavaScript.
func Page(email string, state forms.State, modal gomponents.Node, flashes partials.FlashData) gomponents.Node {
	return layouts.Base("Sign in", flashes,
		html.Div(
			html.Class("w-full max-w-md"),
			LoginCard(email, state),
			html.Div(html.ID("modal-root"), modal),
		),
	)
}
