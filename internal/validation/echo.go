package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule names usable in `validate` struct tags on form DTOs.
const (
	RuleLoginEmail    = "login_email"
	RuleLoginPassword = "login_password"
)

// EchoValidator wraps the go-playground/validator library to implement
// Echo's Validator interface, with this package's email and password checks
// registered as custom rules so DTOs can declare them in struct tags.
type EchoValidator struct {
	validator *validator.Validate
}

// NewEchoValidator creates a validator ready to be assigned to echo.Echo.
func NewEchoValidator() *EchoValidator {
	v := validator.New()

	// Report failures under the form field name rather than the Go struct
	// field, so handlers and templates share one set of keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty names or nil funcs, neither of
	// which can happen here.
	_ = v.RegisterValidation(RuleLoginEmail, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(RuleLoginPassword, func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})

	return &EchoValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (ev *EchoValidator) Validate(i interface{}) error {
	return ev.validator.Struct(i)
}

// FieldErrors flattens a validator error into a field -> message map using
// the provided per-field messages. Fields that fail without a configured
// message get a generic one derived from the field name, so a DTO change
// never produces an empty error string.
func FieldErrors(err error, messages map[string]string) map[string]string {
	if err == nil {
		return nil
	}

	out := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a field-level failure (e.g. a binding problem); the caller
		// decides how to present it.
		return out
	}

	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := messages[field]; ok {
			out[field] = msg
			continue
		}
		out[field] = FieldLabel(field) + " is invalid."
	}
	return out
}
