// Package mailer sends the contact-form notification email over SMTP.
package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Config carries the SMTP settings. An empty Host disables sending.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// Mailer dispatches notification emails. All sends are best-effort: callers
// log failures and never surface them to HTTP clients.
type Mailer struct {
	cfg    Config
	logger *zap.Logger
}

// New creates a Mailer.
func New(cfg Config, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Enabled reports whether SMTP is configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.From != ""
}

// SendContactNotification emails the operator about a new contact submission.
// The visitor's address is set as Reply-To so the operator can answer directly.
func (m *Mailer) SendContactNotification(ctx context.Context, to, name, email, subject, message string) error {
	if !m.Enabled() {
		return nil
	}

	msg := mail.NewMsg()
	if m.cfg.FromName != "" {
		if err := msg.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
			return fmt.Errorf("set from: %w", err)
		}
	} else {
		if err := msg.From(m.cfg.From); err != nil {
			return fmt.Errorf("set from: %w", err)
		}
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	if err := msg.ReplyTo(email); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}
	msg.Subject("Contact Form: " + subject)
	msg.SetBodyString(mail.TypeTextHTML, contactBody(name, email, subject, message))

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.User),
			mail.WithPassword(m.cfg.Pass),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func contactBody(name, email, subject, message string) string {
	return fmt.Sprintf(`<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(subject),
		html.EscapeString(message),
	)
}
