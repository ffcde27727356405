package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferIPv4_IPLiteralSeConserva(t *testing.T) {
	raw := "postgresql://u:p@127.0.0.1:6543/db?sslmode=require"
	assert.Equal(t, raw, preferIPv4(raw))
}

func TestPreferIPv4_URLInvalidaSeDevuelveIgual(t *testing.T) {
	assert.Equal(t, "::not a url", preferIPv4("::not a url"))
}
