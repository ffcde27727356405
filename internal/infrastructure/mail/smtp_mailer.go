// Package mail envía correos transaccionales (recuperación de contraseña) por SMTP con gomail.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/pkg/config"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer implementa ports.Mailer.
type SMTPMailer struct {
	dialer dialer
	from   string
}

// NewSMTPMailer construye el mailer. Devuelve nil si SMTP no está configurado.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	if !cfg.Enabled() {
		return nil
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía un correo HTML a un destinatario.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(newMessage(m.from, to, subject, htmlBody)); err != nil {
		return fmt.Errorf("smtp: enviar correo a %s: %w", to, err)
	}
	return nil
}

func newMessage(from, to, subject, htmlBody string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return msg
}
