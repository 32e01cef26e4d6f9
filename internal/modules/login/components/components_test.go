package components_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"

	"github.com/sagelane/vestibule/internal/forms"
	"github.com/sagelane/vestibule/internal/modules/login/components"
	"github.com/sagelane/vestibule/web/src/templates/partials"
)

func render(t *testing.T, node gomponents.Node) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, node.Render(&sb))

	return sb.String()
}

func TestLoginCard(t *testing.T) {
	t.Run("Idle State", func(t *testing.T) {
		out := render(t, components.LoginCard("", forms.Idle()))

		assert.Contains(t, out, `id="login-card"`)
		assert.Contains(t, out, `hx-post="/login"`)
		assert.Contains(t, out, `hx-target="#login-card"`)
		assert.Contains(t, out, `hx-swap="outerHTML"`)
		assert.Contains(t, out, "novalidate", "browser validation must stay off so the inline messages can take over")
		assert.Contains(t, out, "hx-disabled-elt", "the submit button should lock while a request is in flight")
		assert.Contains(t, out, "hx-on:input", "editing a field should clear terminal-state leftovers")
		assert.Contains(t, out, `id="login-email"`)
		assert.Contains(t, out, `id="login-password"`)
		assert.Contains(t, out, `autocomplete="current-password"`)
		assert.NotContains(t, out, `role="alert"`)
		assert.NotContains(t, out, `role="status"`)
	})

	t.Run("Prefills Email", func(t *testing.T) {
		out := render(t, components.LoginCard("user@example.com", forms.Idle()))

		assert.Contains(t, out, `value="user@example.com"`)
	})

	t.Run("Success Banner", func(t *testing.T) {
		out := render(t, components.LoginCard("", forms.Succeeded("Signed in successfully. Token: abc")))

		assert.Contains(t, out, `role="status"`)
		assert.Contains(t, out, "Signed in successfully. Token: abc")
		assert.Contains(t, out, "data-clears-on-edit", "the banner must vanish when the user edits a field")
	})

	t.Run("Failure Banner", func(t *testing.T) {
		out := render(t, components.LoginCard("", forms.Failed("Invalid email or password")))

		assert.Contains(t, out, `role="alert"`)
		assert.Contains(t, out, "Invalid email or password")
	})

	t.Run("Field Errors", func(t *testing.T) {
		state := forms.FailedFields(map[string]string{
			"email":    "Please enter a valid email address.",
			"password": "Password must be at least 8 characters long.",
		})
		out := render(t, components.LoginCard("nope", state))

		assert.Contains(t, out, `id="login-email-error"`)
		assert.Contains(t, out, `id="login-password-error"`)
		assert.Contains(t, out, "Please enter a valid email address.")
		assert.Contains(t, out, "Password must be at least 8 characters long.")
		assert.Contains(t, out, `aria-invalid="true"`)
		assert.Contains(t, out, `aria-describedby="login-email-error"`)
		assert.NotContains(t, out, `role="alert"`, "field-level failures render at the fields, not as a banner")
	})
}

func TestForgotModal(t *testing.T) {
	t.Run("Idle State", func(t *testing.T) {
		out := render(t, components.ForgotModal("", forms.Idle()))

		assert.Contains(t, out, `id="forgot-dialog"`)
		assert.Contains(t, out, `role="dialog"`)
		assert.Contains(t, out, `aria-modal="true"`)
		assert.Contains(t, out, `aria-labelledby="forgot-title"`)
		assert.Contains(t, out, `id="reset-email"`)
		assert.Contains(t, out, `hx-post="/login/forgot"`)
		assert.Contains(t, out, "Send reset link")
		assert.Contains(t, out, `hx-get="/login/forgot/close"`, "both the backdrop and cancel should close the modal")
		assert.Contains(t, out, "modal-backdrop")
		assert.NotContains(t, out, `role="status"`)
	})

	t.Run("Success Confirmation", func(t *testing.T) {
		out := render(t, components.ForgotModal("", forms.Succeeded("If an account with that email exists, a password reset link has been sent.")))

		assert.Contains(t, out, `role="status"`)
		assert.Contains(t, out, "If an account with that email exists")
		assert.Contains(t, out, `value=""`, "the input should come back cleared")
	})

	t.Run("Rejected Address", func(t *testing.T) {
		out := render(t, components.ForgotModal("nope", forms.Failed("Please provide a valid email")))

		assert.Contains(t, out, `role="alert"`)
		assert.Contains(t, out, "Please provide a valid email")
		assert.Contains(t, out, `value="nope"`, "a rejected address should stay in the input for correction")
	})
}

func TestPage(t *testing.T) {
	t.Run("Full Document", func(t *testing.T) {
		out := render(t, components.Page("", forms.Idle(), nil, partials.FlashData{}))

		assert.Contains(t, out, "<!doctype html>")
		assert.Contains(t, out, "<title>Sign in - Vestibule</title>")
		assert.Contains(t, out, `id="login-card"`)
		assert.Contains(t, out, `id="modal-root"`)
		assert.Contains(t, out, "htmx.org", "the page must load htmx for the fragment swaps")
		assert.Contains(t, out, "/static/app.css")
		assert.NotContains(t, out, `id="forgot-dialog"`)
	})

	t.Run("With Modal Open", func(t *testing.T) {
		modal := components.ForgotModal("", forms.Idle())
		out := render(t, components.Page("", forms.Idle(), modal, partials.FlashData{}))

		assert.Contains(t, out, `id="forgot-dialog"`, "the no-JavaScript path renders the page with the dialog open")
	})

	t.Run("With Flashes", func(t *testing.T) {
		flashes := partials.FlashData{Error: []string{"Invalid email or password"}}
		out := render(t, components.Page("", forms.Idle(), nil, flashes))

		assert.Contains(t, out, "Invalid email or password")
		assert.Contains(t, out, `role="alert"`)
	})
}
