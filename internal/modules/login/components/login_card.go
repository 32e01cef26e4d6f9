package components

import (
	"maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/html"

	"github.com/sagelane/vestibule/internal/forms"
)

// Editing any field removes the terminal-state leftovers, returning the form
// to idle without a server round trip.
const clearStatusScript = "this.querySelectorAll('[data-clears-on-edit]').forEach(function(el){el.remove()})"

// LoginCard renders the sign-in form in the given state. POST responses swap
// the whole card, so every piece of visible state lives inside it.
func LoginCard(email string, state forms.State) gomponents.Node {
	return html.Div(
		html.ID("login-card"),
		html.Class("w-full rounded-xl bg-white p-8 shadow-lg"),
		html.H1(html.Class("mb-6 text-2xl font-bold"), gomponents.Text("Sign in")),
		html.Form(
			html.Action("/login"),
			html.Method("post"),
			gomponents.Attr("novalidate"),
			hx.Post("/login"),
			hx.Target("#login-card"),
			hx.Swap("outerHTML"),
			gomponents.Attr("hx-disabled-elt", "find button[type='submit']"),
			gomponents.Attr("hx-on:input", clearStatusScript),
			statusBanner(state),
			textField(fieldOpts{
				ID:           "login-email",
				Name:         "email",
				Type:         "email",
				Label:        "Email",
				Value:        email,
				Placeholder:  "you@example.com",
				AutoComplete: "email",
				Error:        state.FieldError("email"),
			}),
			textField(fieldOpts{
				ID:           "login-password",
				Name:         "password",
				Type:         "password",
				Label:        "Password",
				AutoComplete: "current-password",
				Error:        state.FieldError("password"),
			}),
			html.Button(
				html.Type("submit"),
				html.Class("mt-2 w-full rounded-lg bg-indigo-600 px-4 py-2 font-semibold text-white hover:bg-indigo-500"),
				gomponents.Text("Sign in"),
				html.Span(html.Class("spinner htmx-indicator ml-2"), html.Aria("hidden", "true")),
			),
		),
		html.Div(
			html.Class("mt-4 text-center"),
			html.A(
				html.Href("/login/forgot"),
				html.Class("text-sm font-medium text-indigo-600 hover:text-indigo-500"),
				hx.Get("/login/forgot"),
				hx.Target("#modal-root"),
				hx.Swap("innerHTML"),
				gomponents.Text("Forgot password?"),
			),
		),
	)
}

// statusBanner shows the terminal outcome of a submission. Idle and
// in-flight forms render nothing here.
func statusBanner(state forms.State) gomponents.Node {
	switch state.Phase() {
	case forms.PhaseSucceeded:
		return html.Div(
			html.Class("mb-4 rounded-lg border-l-4 border-green-500 bg-green-50 p-4 text-sm text-green-800"),
			gomponents.Attr("role", "status"),
			gomponents.Attr("data-clears-on-edit"),
			gomponents.Text(state.Message()),
		)
	case forms.PhaseFailed:
		if state.Message() == "" {
			// Field-level errors render at the fields instead.
			return nil
		}
		return html.Div(
			html.Class("mb-4 rounded-lg border-l-4 border-red-500 bg-red-50 p-4 text-sm text-red-800"),
			gomponents.Attr("role", "alert"),
			gomponents.Attr("data-clears-on-edit"),
			gomponents.Text(state.Message()),
		)
	default:
		return nil
	}
}

type fieldOpts struct {
	ID           string
	Name         string
	Type         string
	Label        string
	Value        string
	Placeholder  string
	AutoComplete string
	Error        string
}

// textField renders a labeled input with its inline error, if any.
func textField(o fieldOpts) gomponents.Node {
	invalid := o.Error != ""

	classes := "mt-1 block w-full rounded-lg border px-3 py-2 shadow-sm focus:outline-none focus:ring-2 "
	if invalid {
		classes += "border-red-400 focus:ring-red-300"
	} else {
		classes += "border-gray-300 focus:ring-indigo-300"
	}

	return html.Div(
		html.Class("mb-4"),
		html.Label(
			html.For(o.ID),
			html.Class("block text-sm font-medium text-gray-700"),
			gomponents.Text(o.Label),
		),
		html.Input(
			html.ID(o.ID),
			html.Type(o.Type),
			html.Name(o.Name),
			html.Value(o.Value),
			html.Placeholder(o.Placeholder),
			html.AutoComplete(o.AutoComplete),
			html.Class(classes),
			gomponents.If(invalid, html.Aria("invalid", "true")),
			gomponents.If(invalid, html.Aria("describedby", o.ID+"-error")),
		),
		gomponents.If(invalid, html.P(
			html.ID(o.ID+"-error"),
			html.Class("mt-1 text-sm text-red-600"),
			gomponents.Attr("data-clears-on-edit"),
			gomponents.Text(o.Error),
		)),
	)
}
