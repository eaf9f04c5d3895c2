package stripe

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/vendrahq/vendra/internal/config"
	"github.com/vendrahq/vendra/internal/logger"
)

// Gateway implements billing.Gateway against the Stripe API. The underlying
// client is injected at construction time so callers and tests never touch
// package-level state.
type Gateway struct {
	client        *stripe.Client
	webhookSecret string
	logger        *logger.Logger
}

// NewGateway creates a Stripe-backed billing gateway from static configuration
func NewGateway(cfg *config.Configuration, logger *logger.Logger) *Gateway {
	return &Gateway{
		client:        stripe.NewClient(cfg.Stripe.SecretKey, nil),
		webhookSecret: cfg.Stripe.WebhookSecret,
		logger:        logger,
	}
}
