package types

import (
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/samber/lo"
)

// BillingPeriod is the cadence a subscription is charged on.
type BillingPeriod string

const (
	BILLING_PERIOD_MONTHLY   BillingPeriod = "monthly"
	BILLING_PERIOD_QUARTERLY BillingPeriod = "quarterly"
	BILLING_PERIOD_BIANNUAL  BillingPeriod = "biannual"
	BILLING_PERIOD_ANNUAL    BillingPeriod = "annual"
)

func (b BillingPeriod) String() string {
	return string(b)
}

// Months returns the number of monthly cycles covered by the period.
// Unknown periods are priced as a single month.
func (b BillingPeriod) Months() int {
	switch b {
	case BILLING_PERIOD_QUARTERLY:
		return 3
	case BILLING_PERIOD_BIANNUAL:
		return 6
	case BILLING_PERIOD_ANNUAL:
		return 12
	default:
		return 1
	}
}

func (b BillingPeriod) Validate() error {
	allowed := []BillingPeriod{
		BILLING_PERIOD_MONTHLY,
		BILLING_PERIOD_QUARTERLY,
		BILLING_PERIOD_BIANNUAL,
		BILLING_PERIOD_ANNUAL,
	}
	if !lo.Contains(allowed, b) {
		return ierr.NewError("invalid billing period").
			WithHint("Invalid billing period").
			WithReportableDetails(map[string]any{
				"billing_period": b,
				"allowed":        allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
