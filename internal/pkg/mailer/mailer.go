package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

// SMTPMailer sends transactional mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg models.SMTPConfig
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg models.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendOTP renders and sends the verification-code mail for an event.
func (m *SMTPMailer) SendOTP(event *models.OTPEmailEvent) error {
	subject := "Your verification code"
	if event.Purpose == models.OTPPurposePasswordReset {
		subject = "Your password reset code"
	}

	body := fmt.Sprintf("Your code is %s. It expires in a few minutes; do not share it with anyone.", event.Code)

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + event.Email,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{event.Email}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
