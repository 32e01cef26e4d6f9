// Package validation holds the form input checks shared by the login UI and
// the mock gateways. The checks are deliberately shallow: the email test is a
// shape test, not an RFC-5322 parser, and the password test is a plain length
// floor with no character-class rules.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinPasswordLength is the only password rule enforced client-side.
const MinPasswordLength = 8

// emailPattern accepts "something@something.something" where no part may
// contain whitespace or a second '@'. Internationalized domains and quoted
// local parts are out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s is long enough to be accepted. Any
// characters count toward the minimum; there are no complexity requirements.
func IsValidPassword(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLength
}

var titleCaser = cases.Title(language.AmericanEnglish)

// FieldLabel turns a form field name such as "email" or "confirm_password"
// into a label suitable for user-facing messages ("Email",
// "Confirm Password").
func FieldLabel(field string) string {
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}
