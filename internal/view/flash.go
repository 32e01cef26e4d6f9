// Package view holds render helpers shared by every page, chiefly the
// one-shot flash messages the non-HTMX fallback path rides on.
package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/sagelane/vestibule/web/src/templates/partials"
)

const (
	flashSessionName  = "flash-session"
	flashKeySuccess   = "success"
	flashKeyError     = "error"
	flashKeyFormEmail = "form_email"
)

// setFlash queues a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess queues a success message for the next render.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError queues an error message for the next render.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears the queued flash messages.
func GetFlashData(c echo.Context) partials.FlashData {
	var data partials.FlashData

	sess, _ := session.Get(flashSessionName, c)

	successFlashes := sess.Flashes(flashKeySuccess)
	errorFlashes := sess.Flashes(flashKeyError)
	if len(successFlashes) == 0 && len(errorFlashes) == 0 {
		return data
	}

	for _, f := range successFlashes {
		if s, ok := f.(string); ok {
			data.Success = append(data.Success, s)
		}
	}
	for _, f := range errorFlashes {
		if s, ok := f.(string); ok {
			data.Error = append(data.Error, s)
		}
	}

	// Reading flashes mutates the session; save to persist the clearing.
	_ = sess.Save(c.Request(), c.Response())
	return data
}

// SetFormEmail preserves a submitted email address across a redirect so the
// next render of the form can prefill the field.
func SetFormEmail(c echo.Context, email string) {
	if email == "" {
		return
	}
	setFlash(c, flashKeyFormEmail, email)
}

// PopFormEmail retrieves and clears a preserved email address, if any.
func PopFormEmail(c echo.Context) string {
	sess, _ := session.Get(flashSessionName, c)

	flashes := sess.Flashes(flashKeyFormEmail)
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())

	if s, ok := flashes[0].(string); ok {
		return s
	}
	return ""
}
