// Package mailer sends notification emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/campushub/campushub-backend/internal/config"
)

// SMTP delivers notification emails through a plain SMTP relay.
type SMTP struct {
	addr    string
	auth    smtp.Auth
	from    string
	baseURL string
	log     *slog.Logger

	// sendMail is swappable in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates an SMTP mailer from mail settings. baseURL is used to build
// item links embedded in the messages.
func New(cfg config.MailConfig, baseURL string, logger *slog.Logger) *SMTP {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTP{
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth:     auth,
		from:     cfg.From,
		baseURL:  strings.TrimRight(baseURL, "/"),
		log:      logger.With("adapter", "mailer"),
		sendMail: smtp.SendMail,
	}
}

// SendCommentNotification tells an item owner that someone commented on
// their post or note. kind is the human label for the item ("post" or
// "note"), path the item's URL path under the base URL.
func (m *SMTP) SendCommentNotification(ctx context.Context, to, ownerName, commenterName, kind, title, path string) error {
	subject := fmt.Sprintf("New comment on your %s", kind)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\n%s commented on your %s %q.\r\n\r\nRead it here: %s%s\r\n",
		ownerName, commenterName, kind, title, m.baseURL, path)

	return m.send(ctx, to, subject, body)
}

// SendAccountUpdated tells a user their account details were changed.
// Sent after profile email, username or password updates.
func (m *SMTP) SendAccountUpdated(ctx context.Context, to, username string) error {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour account details were just updated. If this was not you, reset your password immediately.\r\n",
		username)

	return m.send(ctx, to, "Your account was updated", body)
}

func (m *SMTP) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(m.from, to, subject, body)
	if err := m.sendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.log.DebugContext(ctx, "mail sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}

// buildMessage assembles an RFC 5322 message with CRLF line endings.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// Noop is a mailer substitute wired when no SMTP host is configured.
// Every send succeeds without doing anything.
type Noop struct{}

func (Noop) SendCommentNotification(context.Context, string, string, string, string, string, string) error {
	return nil
}

func (Noop) SendAccountUpdated(context.Context, string, string) error {
	return nil
}
