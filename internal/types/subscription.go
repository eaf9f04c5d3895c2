package types

import (
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/samber/lo"
)

// SubscriptionStatus is the status of a subscription.
// Taking inspiration from Stripe's subscription statuses.
type SubscriptionStatus string

const (
	SubscriptionStatusActive     SubscriptionStatus = "active"
	SubscriptionStatusIncomplete SubscriptionStatus = "incomplete"
	SubscriptionStatusCancelled  SubscriptionStatus = "cancelled"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) Validate() error {
	allowed := []SubscriptionStatus{
		SubscriptionStatusActive,
		SubscriptionStatusIncomplete,
		SubscriptionStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid subscription status").
			WithHint("Invalid subscription status").
			WithReportableDetails(map[string]any{
				"status":  s,
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UpgradeOutcome discriminates the result shape of a subscription upgrade.
type UpgradeOutcome string

const (
	// UpgradeOutcomeProviderUpdate means the provider subscription was
	// updated in place with provider-managed proration.
	UpgradeOutcomeProviderUpdate UpgradeOutcome = "provider_update"
	// UpgradeOutcomePaymentLink means a payment link was issued for the net
	// amount owed and a pending subscription record was created.
	UpgradeOutcomePaymentLink UpgradeOutcome = "payment_link"
	// UpgradeOutcomeDirectApply means the accrued credit fully covered the
	// new plan and the subscription was switched with no payment step.
	UpgradeOutcomeDirectApply UpgradeOutcome = "direct_apply"
)

// Metadata keys stamped on subscriptions and provider objects during an
// upgrade so the two sides can be reconciled later.
const (
	MetadataKeyTenantID               = "tenant_id"
	MetadataKeySubscriptionID         = "subscription_id"
	MetadataKeyPlanID                 = "plan_id"
	MetadataKeyBillingPeriod          = "billing_period"
	MetadataKeyIsUpgrade              = "is_upgrade"
	MetadataKeyOriginalSubscriptionID = "original_subscription_id"
	MetadataKeyCreditApplied          = "credit_applied"
	MetadataKeyAmountToPay            = "amount_to_pay"
	MetadataKeyUpgradedAt             = "upgraded_at"
	MetadataKeyPreviousPlanCredit     = "previous_plan_credit"
	MetadataKeyRemainingCredit        = "remaining_credit"
)
