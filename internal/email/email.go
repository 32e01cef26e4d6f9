// Package email abstracts outbound mail behind a Sender interface. No
// backend here performs real delivery; the reset flow is mocked end to end.
package email

import (
	"log/slog"
	"sync"
)

// Sender is the contract for sending emails. Implementations decide what
// "sending" means (logging it, recording it).
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// LogSender writes emails to the log instead of delivering them. It is the
// default backend, so the mocked reset mail shows up in the console.
type LogSender struct {
	senderAddress string
}

// NewLogSender creates a LogSender with the given From address.
func NewLogSender(senderAddress string) *LogSender {
	return &LogSender{senderAddress: senderAddress}
}

// Send logs the email instead of sending it.
func (s *LogSender) Send(to, subject, htmlBody string) error {
	slog.Info("Outgoing email (log backend)",
		"from", s.senderAddress,
		"to", to,
		"subject", subject,
	)
	slog.Info("Email body", "html", htmlBody)
	return nil
}

// Mail is one message recorded by a MemorySender.
type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

// MemorySender records emails in memory so tests can assert on what was
// "sent".
type MemorySender struct {
	mu   sync.Mutex
	sent []Mail
}

// NewMemorySender creates an empty MemorySender.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

// Send records the email.
func (s *MemorySender) Send(to, subject, htmlBody string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, Mail{To: to, Subject: subject, HTMLBody: htmlBody})
	return nil
}

// Sent returns a copy of every recorded email, in send order.
func (s *MemorySender) Sent() []Mail {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Mail, len(s.sent))
	copy(out, s.sent)
	return out
}
