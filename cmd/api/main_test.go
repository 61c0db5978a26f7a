package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/config"
)

func validConfig() *config.Config {
	return &config.Config{
		Environment: config.Development,
		Server: config.ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			Host:         "localhost",
			Port:         "5432",
			Username:     "postgres",
			Password:     "postgres",
			Database:     "marketplace",
			QueryTimeout: 5 * time.Second,
		},
		Logger:      config.LoggerConfig{Level: "info"},
		Transaction: config.TransactionConfig{LockTimeoutMs: 2000, MaxRetries: 3},
		Stripe: config.StripeConfig{
			SecretKey:            "sk_test",
			PaymentWebhookSecret: "whsec_payment",
			ConnectWebhookSecret: "whsec_connect",
			SuccessURL:           "https://example.com/success",
			CancelURL:            "https://example.com/cancel",
		},
		Auth:    config.AuthConfig{JWTSecret: "secret"},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(*config.Config) {}, ""},
		{"missing port", func(c *config.Config) { c.Server.Port = 0 }, "server.port"},
		{"missing webhook secret", func(c *config.Config) { c.Stripe.PaymentWebhookSecret = "" }, "MP_STRIPE_PAYMENT_WEBHOOK_SECRET"},
		{"missing jwt secret", func(c *config.Config) { c.Auth.JWTSecret = "" }, "auth.jwtSecret"},
		{"unknown environment", func(c *config.Config) { c.Environment = "staging" }, "invalid environment"},
		{"relative metrics path", func(c *config.Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"metrics path ignored when disabled", func(c *config.Config) {
			c.Metrics = config.MetricsConfig{Enabled: false}
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
