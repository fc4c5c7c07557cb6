package env

import (
	"errors"
	"os"

	"tapify_backend/internal/config"
)

const (
	paystackSecretEnvName  = "PAYSTACK_SECRET_KEY"
	paystackBaseURLEnvName = "PAYSTACK_BASE_URL"
)

type paystackConfig struct {
	secretKey string
	baseURL   string
}

func NewPaystackConfig() (config.PaystackConfig, error) {
	secret := os.Getenv(paystackSecretEnvName)
	if len(secret) == 0 {
		return nil, errors.New("paystack secret key not found")
	}

	baseURL := os.Getenv(paystackBaseURLEnvName)
	if len(baseURL) == 0 {
		baseURL = "https://api.paystack.co"
	}

	return &paystackConfig{
		secretKey: secret,
		baseURL:   baseURL,
	}, nil
}

func (cfg *paystackConfig) SecretKey() string {
	return cfg.secretKey
}

func (cfg *paystackConfig) BaseURL() string {
	return cfg.baseURL
}
