package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagelane/vestibule/internal/validation"
)

func TestIsValidEmail(t *testing.T) {
	t.Run("Accepts well-formed addresses", func(t *testing.T) {
		valid := []string{
			"user@example.com",
			"first.last@sub.domain.org",
			"odd+tag@host.co",
		}
		for _, email := range valid {
			assert.True(t, validation.IsValidEmail(email), "expected %q to be valid", email)
		}
	})

	t.Run("Rejects missing at sign", func(t *testing.T) {
		assert.False(t, validation.IsValidEmail("userexample.com"))
	})

	t.Run("Rejects missing dot after at sign", func(t *testing.T) {
		assert.False(t, validation.IsValidEmail("user@example"))
	})

	t.Run("Rejects whitespace and empty input", func(t *testing.T) {
		invalid := []string{
			"",
			" ",
			"us er@example.com",
			"user@exa mple.com",
			"@example.com",
			"user@",
		}
		for _, email := range invalid {
			assert.False(t, validation.IsValidEmail(email), "expected %q to be rejected", email)
		}
	})
}

func TestIsValidPassword(t *testing.T) {
	t.Run("Rejects short passwords", func(t *testing.T) {
		assert.False(t, validation.IsValidPassword(""))
		assert.False(t, validation.IsValidPassword("seven77"))
	})

	t.Run("Accepts eight or more characters", func(t *testing.T) {
		assert.True(t, validation.IsValidPassword("eight888"))
		assert.True(t, validation.IsValidPassword("correct horse battery staple"))
	})

	t.Run("Counts runes rather than bytes", func(t *testing.T) {
		// Eight runes, more than eight bytes.
		assert.True(t, validation.IsValidPassword("pässwörd"))
		// Seven runes even though the encoding is longer.
		assert.False(t, validation.IsValidPassword("pässwör"))
	})

	t.Run("Ignores content rules entirely", func(t *testing.T) {
		assert.True(t, validation.IsValidPassword("        "), "eight spaces satisfy the length rule")
	})
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Email", validation.FieldLabel("email"))
	assert.Equal(t, "Confirm Password", validation.FieldLabel("confirm_password"))
}
