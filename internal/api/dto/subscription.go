package dto

import (
	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/domain/subscription"
	"github.com/vendrahq/vendra/internal/types"
	"github.com/vendrahq/vendra/internal/validator"
)

// UpgradeSubscriptionRequest selects the plan and billing period to move
// the company's active subscription to.
type UpgradeSubscriptionRequest struct {
	NewPlanID     string              `json:"new_plan_id" binding:"required" validate:"required"`
	BillingPeriod types.BillingPeriod `json:"billing_period" validate:"omitempty"`
}

func (r *UpgradeSubscriptionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.BillingPeriod != "" {
		return r.BillingPeriod.Validate()
	}
	return nil
}

// GetBillingPeriod defaults to monthly when the request leaves it unset
func (r *UpgradeSubscriptionRequest) GetBillingPeriod() types.BillingPeriod {
	if r.BillingPeriod == "" {
		return types.BILLING_PERIOD_MONTHLY
	}
	return r.BillingPeriod
}

// UpgradeSubscriptionResponse is the tagged result of an upgrade. Outcome
// selects which optional fields are set: payment_url and amount_to_pay only
// accompany the payment_link outcome, remaining_credit only direct_apply.
type UpgradeSubscriptionResponse struct {
	Outcome       types.UpgradeOutcome  `json:"outcome"`
	Message       string                `json:"message"`
	NewPlan       string                `json:"new_plan"`
	CreditApplied decimal.Decimal       `json:"credit_applied"`
	Subscription  *SubscriptionResponse `json:"subscription,omitempty"`

	PaymentURL  string           `json:"payment_url,omitempty"`
	AmountToPay *decimal.Decimal `json:"amount_to_pay,omitempty"`

	RemainingCredit *decimal.Decimal `json:"remaining_credit,omitempty"`
}

// CreateSubscriptionRequest enrolls the company on a plan
type CreateSubscriptionRequest struct {
	PlanID                 string              `json:"plan_id" binding:"required" validate:"required"`
	BillingPeriod          types.BillingPeriod `json:"billing_period" validate:"omitempty"`
	ProviderSubscriptionID *string             `json:"provider_subscription_id,omitempty"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.BillingPeriod != "" {
		return r.BillingPeriod.Validate()
	}
	return nil
}

// GetBillingPeriod defaults to monthly when the request leaves it unset
func (r *CreateSubscriptionRequest) GetBillingPeriod() types.BillingPeriod {
	if r.BillingPeriod == "" {
		return types.BILLING_PERIOD_MONTHLY
	}
	return r.BillingPeriod
}

// SubscriptionResponse represents the subscription response structure
type SubscriptionResponse struct {
	*subscription.Subscription
}

// ListSubscriptionsResponse represents a subscription listing
type ListSubscriptionsResponse struct {
	Items []*SubscriptionResponse `json:"items"`
	Total int                     `json:"total"`
}
