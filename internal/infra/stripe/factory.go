// Package stripe adapts the Stripe Connect, Checkout and webhook APIs to the payment provider port.
package stripe

import (
	"log/slog"
	"net/http"
	"sync"

	"storefront/config"
	"storefront/internal/domain/service"

	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// ProviderFactory builds Stripe providers from the current configuration and
// caches one API client per secret key.
type ProviderFactory struct {
	cfg    *config.StripeConfig
	logger *slog.Logger

	// apiURL overrides the Stripe endpoint, used by tests.
	apiURL string

	mu      sync.Mutex
	clients map[string]*client.API
}

// NewProviderFactory is the fx constructor of the payment provider factory.
func NewProviderFactory(cfg *config.Config, logger *slog.Logger) service.PaymentProviderFactory {
	return newProviderFactory(cfg.Stripe, logger, "")
}

func newProviderFactory(cfg *config.StripeConfig, logger *slog.Logger, apiURL string) *ProviderFactory {
	if cfg == nil {
		cfg = &config.StripeConfig{}
	}

	return &ProviderFactory{
		cfg:     cfg,
		logger:  logger,
		apiURL:  apiURL,
		clients: make(map[string]*client.API),
	}
}

// Provider returns a provider bound to the configured secret key.
func (f *ProviderFactory) Provider() (service.PaymentProvider, error) {
	if f.cfg.SecretKey == "" {
		return nil, service.ErrProviderNotConfigured
	}

	return &provider{
		api:           f.client(f.cfg.SecretKey),
		webhookSecret: f.cfg.WebhookSecret,
	}, nil
}

func (f *ProviderFactory) client(secretKey string) *client.API {
	f.mu.Lock()
	defer f.mu.Unlock()

	if api, ok := f.clients[secretKey]; ok {
		return api
	}

	backendConfig := &stripego.BackendConfig{
		HTTPClient:        &http.Client{Timeout: f.cfg.Timeout},
		LeveledLogger:     newLeveledLogger(f.logger),
		MaxNetworkRetries: stripego.Int64(f.cfg.MaxNetworkRetries),
	}
	if f.apiURL != "" {
		backendConfig.URL = stripego.String(f.apiURL)
	}

	api := &client.API{}
	api.Init(secretKey, stripego.NewBackendsWithConfig(backendConfig))
	f.clients[secretKey] = api

	return api
}
