package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Message is a plaintext email.
type Message struct {
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	Text     string
}

type Config struct {
	Host string
	Port int
	// Secure selects implicit TLS (SMTPS, usually port 465). When false the
	// dialer upgrades with STARTTLS if the server offers it.
	Secure   bool
	Username string
	Password string
}

// SMTP delivers messages through a relay. The sender address is the relay
// username.
type SMTP struct {
	cfg Config
}

func NewSMTP(cfg Config) *SMTP {
	return &SMTP{cfg: cfg}
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("smtp not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Username, msg.FromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.SSL = s.cfg.Secure

	return d.DialAndSend(m)
}
