package testutil

import (
	"context"
	"sync"

	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/integration/billing"
)

var _ billing.Gateway = (*FakeBillingGateway)(nil)

// FakeBillingGateway is a scriptable billing.Gateway for tests. Each method
// records its calls; setting the corresponding error makes it fail.
type FakeBillingGateway struct {
	mu sync.Mutex

	UpdateErr      error
	PaymentLinkErr error
	WebhookErr     error

	// Subscription is returned by UpdateSubscriptionPlan when set
	Subscription *billing.ProviderSubscription
	// Link is returned by CreateUpgradePaymentLink when set
	Link *billing.PaymentLink
	// Event is returned by ConstructWebhookEvent when set
	Event *billing.WebhookEvent

	UpdateCalls      []*billing.UpdateSubscriptionPlanRequest
	PaymentLinkCalls []*billing.UpgradePaymentLinkRequest
}

// NewFakeBillingGateway creates a fake gateway with benign defaults
func NewFakeBillingGateway() *FakeBillingGateway {
	return &FakeBillingGateway{}
}

func (g *FakeBillingGateway) UpdateSubscriptionPlan(ctx context.Context, req *billing.UpdateSubscriptionPlanRequest) (*billing.ProviderSubscription, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.UpdateCalls = append(g.UpdateCalls, req)
	if g.UpdateErr != nil {
		return nil, g.UpdateErr
	}
	if g.Subscription != nil {
		return g.Subscription, nil
	}
	return &billing.ProviderSubscription{
		ID:     req.ProviderSubscriptionID,
		Status: "active",
	}, nil
}

func (g *FakeBillingGateway) CreateUpgradePaymentLink(ctx context.Context, req *billing.UpgradePaymentLinkRequest) (*billing.PaymentLink, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.PaymentLinkCalls = append(g.PaymentLinkCalls, req)
	if g.PaymentLinkErr != nil {
		return nil, g.PaymentLinkErr
	}
	if g.Link != nil {
		return g.Link, nil
	}
	return &billing.PaymentLink{
		ID:  "plink_test",
		URL: "https://pay.example.com/plink_test",
	}, nil
}

func (g *FakeBillingGateway) ConstructWebhookEvent(payload []byte, signature string) (*billing.WebhookEvent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.WebhookErr != nil {
		return nil, g.WebhookErr
	}
	if g.Event != nil {
		return g.Event, nil
	}
	return nil, ierr.NewError("no webhook event scripted").
		WithHint("Invalid webhook payload").
		Mark(ierr.ErrValidation)
}

// UpdateCallCount returns how many provider updates were attempted
func (g *FakeBillingGateway) UpdateCallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.UpdateCalls)
}

// PaymentLinkCallCount returns how many payment links were requested
func (g *FakeBillingGateway) PaymentLinkCallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.PaymentLinkCalls)
}
