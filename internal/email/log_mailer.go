package email

import "folio_backend/internal/logger"

// LogMailer stands in for SMTP in development: the message is logged, not
// delivered. Selected automatically when no SMTP host is configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(to, replyTo, subject, body string) error {
	logger.Info("email suppressed (no SMTP configured)",
		"to", to, "reply_to", replyTo, "subject", subject, "bytes", len(body))
	return nil
}
