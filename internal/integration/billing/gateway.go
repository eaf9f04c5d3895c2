package billing

import (
	"context"

	"github.com/vendrahq/vendra/internal/types"
)

// Gateway abstracts the payment provider used for plan upgrades. The
// service layer branches on returned errors, never on provider exceptions:
// an error marked not-found means no matching priced product exists and the
// caller should fall back to the payment-link flow.
type Gateway interface {
	// UpdateSubscriptionPlan moves a provider subscription's line item to
	// the price matching the plan and billing period, with provider-managed
	// proration.
	UpdateSubscriptionPlan(ctx context.Context, req *UpdateSubscriptionPlanRequest) (*ProviderSubscription, error)

	// CreateUpgradePaymentLink creates a transient product and price for
	// exactly the net amount owed and returns a hosted payment link.
	CreateUpgradePaymentLink(ctx context.Context, req *UpgradePaymentLinkRequest) (*PaymentLink, error)

	// ConstructWebhookEvent verifies a webhook payload signature and
	// decodes the event.
	ConstructWebhookEvent(payload []byte, signature string) (*WebhookEvent, error)
}

// UpdateSubscriptionPlanRequest identifies the provider subscription and
// the target plan/period used to locate the provider-side price.
type UpdateSubscriptionPlanRequest struct {
	ProviderSubscriptionID string
	PlanID                 string
	BillingPeriod          types.BillingPeriod
}

// ProviderSubscription is the provider's view of an updated subscription
type ProviderSubscription struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	PriceID          string `json:"price_id"`
	UnitAmountCents  int64  `json:"unit_amount_cents"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
}

// UpgradePaymentLinkRequest carries everything needed to build a one-off
// discounted payment link for the net upgrade amount.
type UpgradePaymentLinkRequest struct {
	ProductName string
	AmountCents int64
	Currency    string
	RedirectURL string
	Metadata    types.Metadata
}

// PaymentLink references the transient provider objects created for an
// upgrade payment, tagged via metadata so they can be reconciled later.
type PaymentLink struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	ProductID string `json:"product_id"`
	PriceID   string `json:"price_id"`
}

// WebhookEvent is a verified, decoded provider webhook notification
type WebhookEvent struct {
	ID       string
	Type     string
	Metadata types.Metadata
}

// Webhook event types the upgrade flow reacts to
const (
	WebhookEventCheckoutCompleted = "checkout.session.completed"
)
