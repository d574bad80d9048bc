package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"fleetbook/internal/pkg/config"
)

// EmailSender delivers over plain SMTP. When no host is configured the
// sender is a silent no-op, which keeps local development quiet.
type EmailSender struct {
	cfg config.NotifyConfig
}

func NewEmailSender(cfg config.NotifyConfig) *EmailSender {
	return &EmailSender{cfg: cfg}
}

func (s *EmailSender) Enabled() bool {
	return s.cfg.SMTPHost != ""
}

func (s *EmailSender) Send(_ context.Context, to []string, subject, body string) error {
	if !s.Enabled() || len(to) == 0 {
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.EmailFrom,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)

	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	return smtp.SendMail(addr, auth, s.cfg.EmailFrom, to, []byte(msg))
}
