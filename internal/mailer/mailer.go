// Package mailer sends plain text emails over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/gradevo/gradevo-api/internal/config"
	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/models"
)

var ErrNotConfigured = errors.New("smtp is not configured")

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers emails through the configured SMTP relay. When SMTP is
// disabled every message is logged and reported as sent. A relay that does not
// answer within cfg.Timeout, or before ctx is done, fails the send.
type SMTPMailer struct {
	cfg  config.SMTPConfig
	send sendFunc
	now  func() time.Time
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail, now: time.Now}
}

func (m *SMTPMailer) Send(ctx context.Context, email models.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !m.cfg.Enabled {
		logger.Log.Infow("smtp disabled, email not sent", "to", email.ToEmail, "subject", email.Subject)
		return nil
	}
	if m.cfg.Host == "" {
		return ErrNotConfigured
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	msg := buildMessage(m.cfg.FromName, m.cfg.FromEmail, email, m.now())

	if err := m.deliver(ctx, addr, auth, email.ToEmail, msg); err != nil {
		logger.Log.Errorw("failed to send email", "to", email.ToEmail, "error", err)
		return fmt.Errorf("send email: %w", err)
	}

	logger.Log.Infow("email sent", "to", email.ToEmail, "subject", email.Subject)
	return nil
}

// deliver runs the blocking SMTP exchange and stops waiting once ctx is done.
// The exchange itself is left to finish in the background.
func (m *SMTPMailer) deliver(ctx context.Context, addr string, auth smtp.Auth, to string, msg []byte) error {
	if m.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.Timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- m.send(addr, auth, m.cfg.FromEmail, []string{to}, msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(fromName, fromEmail string, email models.Email, date time.Time) []byte {
	from := mail.Address{Name: fromName, Address: fromEmail}
	to := mail.Address{Name: email.ToName, Address: email.ToEmail}

	var b strings.Builder
	b.WriteString("From: " + from.String() + "\r\n")
	b.WriteString("To: " + to.String() + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", email.Subject) + "\r\n")
	b.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(email.Body, "\r\n", "\n"), "\n", "\r\n"))
	b.WriteString("\r\n")

	return []byte(b.String())
}
