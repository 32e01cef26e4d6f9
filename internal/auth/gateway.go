// Package auth defines the gateway the login UI talks to. The only
// implementation is a mock: nothing verifies real credentials and nothing is
// stored, but the interface is where a real backend would plug in.
package auth

import "context"

// SignInResult is the outcome of a sign-in attempt. Expected failures (wrong
// credentials) travel inside the result; a non-nil error from the gateway
// means something unexpected broke and the caller should show a generic
// message.
type SignInResult struct {
	OK      bool
	Token   string
	Message string
}

// ResetResult is the outcome of a password reset request. A successful
// result deliberately looks the same for registered and unregistered
// addresses, so the endpoint cannot be used to probe which accounts exist.
type ResetResult struct {
	OK      bool
	Message string
}

// Gateway is the boundary between the login UI and whatever performs
// authentication. Both calls complete in bounded time; the UI does no
// timeout handling of its own.
type Gateway interface {
	SignIn(ctx context.Context, email, password string) (SignInResult, error)
	RequestReset(ctx context.Context, email string) (ResetResult, error)
}
