package subscription

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/types"
)

// Subscription is a company's paid plan enrollment. AmountCents is the
// integer amount charged for the current billing period; period boundaries
// have calendar-day granularity for proration purposes.
type Subscription struct {
	ID                     string                   `db:"id" json:"id"`
	PlanID                 string                   `db:"plan_id" json:"plan_id"`
	PlanName               string                   `db:"plan_name" json:"plan_name"`
	AmountCents            int64                    `db:"amount_cents" json:"amount_cents"`
	Currency               string                   `db:"currency" json:"currency"`
	BillingPeriod          types.BillingPeriod      `db:"billing_period" json:"billing_period"`
	CurrentPeriodStart     time.Time                `db:"current_period_start" json:"current_period_start"`
	CurrentPeriodEnd       time.Time                `db:"current_period_end" json:"current_period_end"`
	ProviderSubscriptionID *string                  `db:"provider_subscription_id" json:"provider_subscription_id,omitempty"`
	SubscriptionStatus     types.SubscriptionStatus `db:"subscription_status" json:"subscription_status"`
	CancelledAt            *time.Time               `db:"cancelled_at" json:"cancelled_at,omitempty"`
	Metadata               types.Metadata           `db:"metadata" json:"metadata"`
	types.BaseModel
}

// Amount returns the period charge in currency units
func (s *Subscription) Amount() decimal.Decimal {
	return decimal.NewFromInt(s.AmountCents).Div(decimal.NewFromInt(100))
}

// IsActive reports whether the subscription currently grants entitlements
func (s *Subscription) IsActive() bool {
	return s.SubscriptionStatus == types.SubscriptionStatusActive
}

// HasProviderSubscription reports whether the subscription is mirrored by a
// provider-side subscription object that can be updated in place.
func (s *Subscription) HasProviderSubscription() bool {
	return s.ProviderSubscriptionID != nil && *s.ProviderSubscriptionID != ""
}

// New builds a subscription with defaults applied from the request context
func New(ctx context.Context) *Subscription {
	return &Subscription{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		Metadata:  types.Metadata{},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}
