package auth

import (
	"time"

	"github.com/sagelane/vestibule/internal/topics"
)

// TopicPasswordResetRequested carries ResetRequested events from the gateway
// to whoever simulates sending the reset email.
var TopicPasswordResetRequested = topics.Define(
	"auth.password_reset.requested",
	"A password reset was requested for an address; the mailer reacts by sending the reset email.",
)

// ResetRequested is the payload published on TopicPasswordResetRequested.
type ResetRequested struct {
	RequestID   string    `json:"request_id"`
	Email       string    `json:"email"`
	RequestedAt time.Time `json:"requested_at"`
}
