package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/dailycare-store/pkg/config"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestNewSMTPMailer_SinHost_Nil(t *testing.T) {
	assert.Nil(t, NewSMTPMailer(config.SMTPConfig{From: "shop@example.com"}))
}

func TestSend_ArmaCabeceras(t *testing.T) {
	d := &fakeDialer{}
	m := &SMTPMailer{dialer: d, from: "shop@example.com"}

	require.NoError(t, m.Send(context.Background(), "ana@example.com", "Reset your password", "<p>hi</p>"))
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"ana@example.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"shop@example.com"}, d.sent[0].GetHeader("From"))
	assert.Equal(t, []string{"Reset your password"}, d.sent[0].GetHeader("Subject"))
}

func TestSend_ErrorSMTP(t *testing.T) {
	m := &SMTPMailer{dialer: &fakeDialer{err: errors.New("535 auth")}, from: "a@b.c"}
	assert.ErrorContains(t, m.Send(context.Background(), "x@y.z", "s", "b"), "535 auth")
}
