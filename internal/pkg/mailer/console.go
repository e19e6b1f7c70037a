// Package mailer provides the outbound mail boundary. The portal never sends
// real email; the console mailer logs what would have been delivered so the
// reset flow can be exercised end to end in development.
package mailer

import (
	"github.com/rs/zerolog"
)

// Mailer delivers account mail.
type Mailer interface {
	SendPasswordReset(email, token string) error
}

// ConsoleMailer writes outbound mail to the log.
type ConsoleMailer struct {
	logger zerolog.Logger
}

// NewConsoleMailer creates a ConsoleMailer.
func NewConsoleMailer(logger zerolog.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: logger}
}

// SendPasswordReset logs the reset token for the given address.
func (m *ConsoleMailer) SendPasswordReset(email, token string) error {
	m.logger.Info().
		Str("to", email).
		Str("token", token).
		Msg("Password reset mail (console delivery)")
	return nil
}
