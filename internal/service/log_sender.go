package service

import (
	"context"
	"strings"

	"github.com/osa911/contactrelay/internal/logging"

	"github.com/google/uuid"
)

// LogSender prints emails to the log instead of delivering them.
// Used by the local development server.
type LogSender struct {
	logger *logging.Logger
}

// NewLogSender creates a sender that writes to logger
func NewLogSender(logger *logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs email and returns a locally generated message id
func (s *LogSender) Send(_ context.Context, email *Email) (string, error) {
	messageID := "local-" + uuid.NewString()
	s.logger.Info("Contact form submission received (not delivered)")
	s.logger.Info("From: %s", email.From)
	s.logger.Info("To: %s", strings.Join(email.To, ", "))
	s.logger.Info("Subject: %s", email.Subject)
	for _, line := range strings.Split(email.TextBody, "\n") {
		s.logger.Info("  %s", line)
	}
	return messageID, nil
}
