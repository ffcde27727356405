package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config del storefront de terminal, leída de variables de entorno.
type Config struct {
	APIURL          string            `env:"STORE_API_URL" envDefault:"http://localhost:8000"`
	SessionPath     string            `env:"STORE_SESSION_PATH"`
	Category        string            `env:"STORE_CATEGORY"`
	ShippingAddress map[string]string `env:"STORE_SHIPPING_ADDRESS" envKeyValSeparator:"="`
	LogLevel        string            `env:"LOG_LEVEL" envDefault:"warn"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.SessionPath = filepath.Join(dir, "dailycare", "storefront.db")
	}
	return cfg, nil
}

func (c Config) shippingAddress() map[string]any {
	out := make(map[string]any, len(c.ShippingAddress))
	for k, v := range c.ShippingAddress {
		out[k] = v
	}
	return out
}
