package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelane/vestibule/internal/validation"
)

type loginForm struct {
	Email    string `form:"email" validate:"required,login_email"`
	Password string `form:"password" validate:"required,login_password"`
}

func TestEchoValidator(t *testing.T) {
	v := validation.NewEchoValidator()

	t.Run("Passes a well-formed login form", func(t *testing.T) {
		err := v.Validate(loginForm{Email: "user@example.com", Password: "Password123!"})
		assert.NoError(t, err)
	})

	t.Run("Fails a malformed email", func(t *testing.T) {
		err := v.Validate(loginForm{Email: "not-an-email", Password: "Password123!"})
		assert.Error(t, err)
	})

	t.Run("Fails a short password", func(t *testing.T) {
		err := v.Validate(loginForm{Email: "user@example.com", Password: "short"})
		assert.Error(t, err)
	})
}

func TestFieldErrors(t *testing.T) {
	v := validation.NewEchoValidator()
	messages := map[string]string{
		"email":    "Please enter a valid email address.",
		"password": "Password must be at least 8 characters long.",
	}

	t.Run("Maps failures to form field names", func(t *testing.T) {
		err := v.Validate(loginForm{Email: "nope", Password: "short"})
		require.Error(t, err)

		fields := validation.FieldErrors(err, messages)
		assert.Equal(t, "Please enter a valid email address.", fields["email"])
		assert.Equal(t, "Password must be at least 8 characters long.", fields["password"])
	})

	t.Run("Only reports failing fields", func(t *testing.T) {
		err := v.Validate(loginForm{Email: "user@example.com", Password: "short"})
		require.Error(t, err)

		fields := validation.FieldErrors(err, messages)
		assert.NotContains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("Falls back to a generic message", func(t *testing.T) {
		err := v.Validate(loginForm{Email: "nope", Password: "Password123!"})
		require.Error(t, err)

		fields := validation.FieldErrors(err, nil)
		assert.Equal(t, "Email is invalid.", fields["email"])
	})

	t.Run("Handles nil and foreign errors", func(t *testing.T) {
		assert.Nil(t, validation.FieldErrors(nil, messages))
		assert.Empty(t, validation.FieldErrors(errors.New("boom"), messages))
	})
}
