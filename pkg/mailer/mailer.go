package mailer

import (
	"fmt"

	"github.com/pkpu-id/tagihan/config"

	"gopkg.in/gomail.v2"
)

// Message is the structured payload handed to the mail transport.
type Message struct {
	From    string
	To      string
	Bcc     string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(msg Message) error
}

// SMTP delivers messages through a single configured SMTP account. One
// instance is built at startup and injected into the services that send mail.
type SMTP struct {
	dialer *gomail.Dialer
}

func NewSMTP(cfg *config.Config) *SMTP {
	return &SMTP{
		dialer: gomail.NewDialer(cfg.SMTP_HOST, cfg.SMTP_PORT, cfg.SMTP_USER, cfg.SMTP_PASSWORD),
	}
}

func (s *SMTP) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.Bcc != "" {
		m.SetHeader("Bcc", msg.Bcc)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}

	return nil
}
