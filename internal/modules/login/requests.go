package login

// SignInRequest is the login form payload.
type SignInRequest struct {
	Email    string `form:"email" validate:"required,login_email"`
	Password string `form:"password" validate:"required,login_password"`
}

// ResetRequest is the forgot-password form payload. Only presence is checked
// here; the address shape is the gateway's call.
type ResetRequest struct {
	Email string `form:"email"`
}
