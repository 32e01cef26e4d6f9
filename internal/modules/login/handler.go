package login

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sagelane/vestibule/internal/auth"
	"github.com/sagelane/vestibule/internal/forms"
	"github.com/sagelane/vestibule/internal/middleware"
	"github.com/sagelane/vestibule/internal/modules/login/components"
	"github.com/sagelane/vestibule/internal/validation"
	"github.com/sagelane/vestibule/internal/view"
)

// User-facing strings for the sign-in screen.
const (
	msgEmailInvalid     = "Please enter a valid email address."
	msgPasswordTooShort = "Password must be at least 8 characters long."
	msgUnexpected       = "An unexpected error occurred. Please try again."
	msgResetSent        = "If an account with that email exists, a password reset link has been sent."
)

// loginFieldMessages maps failed form fields to their inline messages.
var loginFieldMessages = map[string]string{
	"email":    msgEmailInvalid,
	"password": msgPasswordTooShort,
}

// Handler serves the sign-in screen and its forgot-password modal.
type Handler struct {
	gateway auth.Gateway
}

// NewHandler creates a login handler backed by the given gateway.
func NewHandler(gateway auth.Gateway) *Handler {
	return &Handler{gateway: gateway}
}

// isHTMX reports whether the request came from htmx rather than a plain
// form submission or navigation.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// PageGet renders the sign-in page (GET /login). A form_email flash left by
// a previous non-HTMX submission prefills the email input.
func (h *Handler) PageGet(c echo.Context) error {
	email := view.PopFormEmail(c)
	flashes := view.GetFlashData(c)

	return c.Render(http.StatusOK, "", components.Page(email, forms.Idle(), nil, flashes))
}

// SubmitPost handles a sign-in attempt (POST /login). Validation failures
// never reach the gateway.
func (h *Handler) SubmitPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind login form", "error", err)
		return h.respondLogin(c, "", forms.Failed(msgUnexpected))
	}

	if err := c.Validate(req); err != nil {
		fields := validation.FieldErrors(err, loginFieldMessages)
		return h.respondLogin(c, req.Email, forms.FailedFields(fields))
	}

	res, err := h.gateway.SignIn(ctx, req.Email, req.Password)

	var state forms.State
	switch {
	case err != nil:
		// The one place an unexpected failure gets traced; the user only
		// ever sees the generic message.
		incidentID := uuid.NewString()
		logger.Error("Sign-in failed unexpectedly", "incident_id", incidentID, "error", err)
		state = forms.Failed(msgUnexpected)
	case res.OK:
		state = forms.Succeeded(fmt.Sprintf("Signed in successfully. Token: %s", res.Token))
	default:
		logger.Warn("Failed sign-in attempt", "email", req.Email)
		state = forms.Failed(res.Message)
	}

	return h.respondLogin(c, req.Email, state)
}

// ForgotGet opens the forgot-password modal (GET /login/forgot), always in a
// fresh idle state regardless of what a previous attempt showed.
func (h *Handler) ForgotGet(c echo.Context) error {
	if isHTMX(c) {
		return c.Render(http.StatusOK, "", components.ForgotModal("", forms.Idle()))
	}

	// No htmx: render the whole page with the dialog already open.
	email := view.PopFormEmail(c)
	flashes := view.GetFlashData(c)
	modal := components.ForgotModal("", forms.Idle())

	return c.Render(http.StatusOK, "", components.Page(email, forms.Idle(), modal, flashes))
}

// ForgotPost handles a reset request (POST /login/forgot). The handler only
// rejects an empty address; judging the address shape is the gateway's job,
// and its answer never reveals whether an account exists.
func (h *Handler) ForgotPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req ResetRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind reset form", "error", err)
		return h.respondForgot(c, "", forms.Failed(msgUnexpected))
	}

	if req.Email == "" {
		return h.respondForgot(c, "", forms.Failed(auth.MsgInvalidResetEmail))
	}

	res, err := h.gateway.RequestReset(ctx, req.Email)

	email := req.Email
	var state forms.State
	switch {
	case err != nil:
		incidentID := uuid.NewString()
		logger.Error("Reset request failed unexpectedly", "incident_id", incidentID, "error", err)
		state = forms.Failed(msgUnexpected)
	case res.OK:
		state = forms.Succeeded(msgResetSent)
		// Clear the input; the dialog stays open showing the confirmation.
		email = ""
	default:
		state = forms.Failed(res.Message)
	}

	return h.respondForgot(c, email, state)
}

// ForgotClose empties the modal root (GET /login/forgot/close).
func (h *Handler) ForgotClose(c echo.Context) error {
	if isHTMX(c) {
		return c.HTML(http.StatusOK, "")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}

// respondLogin renders the login card fragment for htmx, or falls back to
// post/redirect/get with flash messages, preserving the submitted email the
// way the next render expects to find it.
func (h *Handler) respondLogin(c echo.Context, email string, state forms.State) error {
	if isHTMX(c) {
		return c.Render(http.StatusOK, "", components.LoginCard(email, state))
	}

	switch state.Phase() {
	case forms.PhaseSucceeded:
		view.SetFlashSuccess(c, state.Message())
	case forms.PhaseFailed:
		if state.Message() != "" {
			view.SetFlashError(c, state.Message())
		}
		for _, field := range []string{"email", "password"} {
			if msg := state.FieldError(field); msg != "" {
				view.SetFlashError(c, msg)
			}
		}
		view.SetFormEmail(c, email)
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// respondForgot is the modal counterpart of respondLogin.
func (h *Handler) respondForgot(c echo.Context, email string, state forms.State) error {
	if isHTMX(c) {
		return c.Render(http.StatusOK, "", components.ForgotModal(email, state))
	}

	switch state.Phase() {
	case forms.PhaseSucceeded:
		view.SetFlashSuccess(c, state.Message())
	case forms.PhaseFailed:
		view.SetFlashError(c, state.Message())
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}
