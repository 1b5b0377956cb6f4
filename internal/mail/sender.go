// Package mail sends transactional email over SMTP. When no host or user
// is configured the sender runs in dev mode and logs messages instead of
// sending them.
package mail

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/liorae/liora/internal/observability"
)

// Config contains SMTP settings.
type Config struct {
	Host             string `env:"EMAIL_HOST"`
	Port             int    `env:"EMAIL_PORT"          envDefault:"587"`
	User             string `env:"EMAIL_HOST_USER"`
	Password         string `env:"EMAIL_HOST_PASSWORD"`
	From             string `env:"EMAIL_FROM"          envDefault:"Lioraè Co. <no-reply@liorae.co>"`
	ContactRecipient string `env:"CONTACT_RECIPIENT"   envDefault:"hello@liorae.co"`
}

// Message is one outbound email. Text is the plain body; HTML, when set,
// is attached as the preferred alternative.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPSender implements Sender over net/smtp with plain auth.
type SMTPSender struct {
	cfg     Config
	devMode bool
}

// NewSMTPSender creates an SMTP sender. Missing host or user switches it
// into dev mode.
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{
		cfg:     cfg,
		devMode: cfg.Host == "" || cfg.User == "",
	}
}

// Send delivers one message, or logs it in dev mode.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	logger := observability.FromContext(ctx)

	if s.devMode {
		logger.Info("dev mode email (not sent)",
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.String("body", msg.Text),
		)
		return nil
	}

	from, err := envelopeAddress(s.cfg.From)
	if err != nil {
		return fmt.Errorf("invalid from address %q: %w", s.cfg.From, err)
	}

	body, err := buildMessage(s.cfg.From, msg)
	if err != nil {
		return fmt.Errorf("failed to build message: %w", err)
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if err := smtp.SendMail(addr, auth, from, msg.To, body); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", strings.Join(msg.To, ","), err)
	}

	logger.Info("email sent",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}

// envelopeAddress extracts the bare address from a display-name From header.
func envelopeAddress(from string) (string, error) {
	parsed, err := mail.ParseAddress(from)
	if err != nil {
		return "", err
	}
	return parsed.Address, nil
}

// buildMessage assembles the RFC 5322 message, multipart/alternative when
// both a text and an HTML body are present.
func buildMessage(from string, msg *Message) ([]byte, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("message has no recipients")
	}

	var b strings.Builder
	writeHeader := func(k, v string) {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\r\n")
	}

	writeHeader("From", from)
	writeHeader("To", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		writeHeader("Reply-To", msg.ReplyTo)
	}
	writeHeader("Subject", msg.Subject)
	writeHeader("MIME-Version", "1.0")

	if msg.HTML == "" {
		writeHeader("Content-Type", "text/plain; charset=UTF-8")
		b.WriteString("\r\n")
		b.WriteString(msg.Text)
		return []byte(b.String()), nil
	}

	const boundary = "liora-alt-boundary"
	writeHeader("Content-Type", "multipart/alternative; boundary="+boundary)
	b.WriteString("\r\n")

	// Plain part first so clients prefer the HTML alternative.
	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.Text)
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")

	b.WriteString("--" + boundary + "--\r\n")
	return []byte(b.String()), nil
}
