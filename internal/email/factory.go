package email

import (
	"fmt"

	"github.com/sagelane/vestibule/internal/config"
)

// NewService creates the email sender selected by configuration.
func NewService(cfg config.Provider) (Sender, error) {
	switch cfg.GetEmailProvider() {
	case "log":
		return NewLogSender(cfg.GetEmailSender()), nil
	case "memory":
		return NewMemorySender(), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.GetEmailProvider())
	}
}
