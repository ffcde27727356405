package sms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jhoicas/dailycare-store/pkg/config"
)

type fakeAPI struct {
	params *openapi.CreateMessageParams
	err    error
}

func (f *fakeAPI) CreateMessage(p *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = p
	return &openapi.ApiV2010Message{}, f.err
}

func TestNewTwilioSender_SinCredenciales_Nil(t *testing.T) {
	assert.Nil(t, NewTwilioSender(config.TwilioConfig{AccountSID: "AC1"}))
}

func TestSendSMS_ArmaParametros(t *testing.T) {
	api := &fakeAPI{}
	s := &TwilioSender{api: api, from: "+15550001"}

	require.NoError(t, s.SendSMS(context.Background(), "+919800000000", "code 123456"))
	require.NotNil(t, api.params)
	assert.Equal(t, "+919800000000", *api.params.To)
	assert.Equal(t, "+15550001", *api.params.From)
	assert.Equal(t, "code 123456", *api.params.Body)
}

func TestSendSMS_ErrorDelProveedor(t *testing.T) {
	s := &TwilioSender{api: &fakeAPI{err: errors.New("boom")}, from: "+1"}
	assert.ErrorContains(t, s.SendSMS(context.Background(), "+2", "x"), "boom")
}

func TestSendSMS_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	api := &fakeAPI{}
	s := &TwilioSender{api: api, from: "+1"}
	assert.ErrorIs(t, s.SendSMS(ctx, "+2", "x"), context.Canceled)
	assert.Nil(t, api.params)
}
