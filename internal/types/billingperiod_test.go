package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillingPeriodMonths(t *testing.T) {
	tests := []struct {
		period BillingPeriod
		want   int
	}{
		{BILLING_PERIOD_MONTHLY, 1},
		{BILLING_PERIOD_QUARTERLY, 3},
		{BILLING_PERIOD_BIANNUAL, 6},
		{BILLING_PERIOD_ANNUAL, 12},
		{BillingPeriod("weekly"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Months())
		})
	}
}

func TestBillingPeriodValidate(t *testing.T) {
	for _, period := range []BillingPeriod{
		BILLING_PERIOD_MONTHLY,
		BILLING_PERIOD_QUARTERLY,
		BILLING_PERIOD_BIANNUAL,
		BILLING_PERIOD_ANNUAL,
	} {
		assert.NoError(t, period.Validate())
	}

	assert.Error(t, BillingPeriod("weekly").Validate())
	assert.Error(t, BillingPeriod("").Validate())
}
