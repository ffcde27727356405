package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_LeeVariables(t *testing.T) {
	t.Setenv("STORE_API_URL", "https://api.pureglow.in")
	t.Setenv("STORE_SESSION_PATH", "/tmp/s.db")
	t.Setenv("STORE_SHIPPING_ADDRESS", "city=Mumbai,pincode=400001")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://api.pureglow.in", cfg.APIURL)
	assert.Equal(t, "/tmp/s.db", cfg.SessionPath)
	assert.Equal(t, map[string]any{"city": "Mumbai", "pincode": "400001"}, cfg.shippingAddress())
}

func TestLoadConfig_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORE_API_URL", "")
	t.Setenv("STORE_SESSION_PATH", "")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.APIURL)
	assert.Contains(t, cfg.SessionPath, "storefront.db")
}
