// Package sms envía los códigos OTP por SMS usando Twilio.
package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/pkg/config"
)

var _ ports.SMSSender = (*TwilioSender)(nil)

// messageCreator es el subconjunto del cliente REST de Twilio que se usa.
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioSender implementa ports.SMSSender.
type TwilioSender struct {
	api  messageCreator
	from string
}

// NewTwilioSender construye el sender. Devuelve nil si faltan credenciales (SMS desactivado).
func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	if !cfg.Enabled() {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{api: client.Api, from: cfg.PhoneNumber}
}

// SendSMS envía body al número to. El SDK de Twilio no acepta context; se respeta la cancelación previa.
func (s *TwilioSender) SendSMS(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)
	msg, err := s.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio: enviar SMS: %w", err)
	}
	if msg != nil && msg.ErrorMessage != nil && *msg.ErrorMessage != "" {
		return fmt.Errorf("twilio: %s", *msg.ErrorMessage)
	}
	return nil
}
