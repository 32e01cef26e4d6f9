package components

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/sagelane/vestibule/internal/forms"
)

// ForgotModal renders the forgot-password dialog. The fragment is swapped
// into #modal-root; an empty root means the modal is closed. On a successful
// request the caller passes an empty email so the input comes back cleared.
func ForgotModal(email string, state forms.State) gomponents.Node {
	return gomponents.Group{
		// Clicking the backdrop closes the modal. The dialog itself sits
		// above it, so clicks inside the dialog never reach here.
		html.Div(
			html.Class("modal-backdrop fixed inset-0 z-40 bg-black bg-opacity-50"),
			hx.Get("/login/forgot/close"),
			hx.Target("#modal-root"),
			hx.Swap("innerHTML"),
		),
		html.Div(
			html.Class("pointer-events-none fixed inset-0 z-50 flex items-center justify-center p-4"),
			html.Div(
				html.ID("forgot-dialog"),
				gomponents.Attr("role", "dialog"),
				html.Aria("modal", "true"),
				html.Aria("labelledby", "forgot-title"),
				html.Class("pointer-events-auto w-full max-w-sm rounded-xl bg-white p-6 shadow-2xl"),
				html.H2(
					html.ID("forgot-title"),
					html.Class("text-lg font-bold"),
					gomponents.Text("Reset your password"),
				),
				html.P(
					html.Class("mt-1 mb-4 text-sm text-gray-600"),
					gomponents.Text("Enter your email address and we'll send you a link to reset your password."),
				),
				html.Form(
					html.Action("/login/forgot"),
					html.Method("post"),
					gomponents.Attr("novalidate"),
					hx.Post("/login/forgot"),
					hx.Target("#modal-root"),
					hx.Swap("innerHTML"),
					gomponents.Attr("hx-disabled-elt", "find button[type='submit']"),
					gomponents.Attr("hx-on:input", clearStatusScript),
					statusBanner(state),
					textField(fieldOpts{
						ID:           "reset-email",
						Name:         "email",
						Type:         "email",
						Label:        "Email",
						Value:        email,
						Placeholder:  "you@example.com",
						AutoComplete: "email",
						Error:        state.FieldError("email"),
					}),
					html.Div(
						html.Class("mt-6 flex justify-end gap-3"),
						html.A(
							html.Href("/login"),
							html.Class("cursor-pointer rounded-lg px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-100"),
							hx.Get("/login/forgot/close"),
							hx.Target("#modal-root"),
							hx.Swap("innerHTML"),
							gomponents.Text("Cancel"),
						),
						html.Button(
							html.Type("submit"),
							html.Class("rounded-lg bg-indigo-600 px-4 py-2 text-sm font-semibold text-white hover:bg-indigo-500"),
							gomponents.Text("Send reset link"),
							html.Span(html.Class("spinner htmx-indicator ml-2"), html.Aria("hidden", "true")),
						),
					),
				),
			),
		),
	}
}
