package plan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vendrahq/vendra/internal/types"
)

func TestSelectPrice(t *testing.T) {
	base := decimal.NewFromInt(50)

	tests := []struct {
		name   string
		plan   Plan
		period types.BillingPeriod
		want   decimal.Decimal
	}{
		{
			name:   "monthly uses base price",
			plan:   Plan{Price: base},
			period: types.BILLING_PERIOD_MONTHLY,
			want:   base,
		},
		{
			name: "annual tier price wins over multiplication",
			plan: Plan{
				Price:       base,
				PriceAnnual: decimal.NewNullDecimal(decimal.NewFromInt(480)),
			},
			period: types.BILLING_PERIOD_ANNUAL,
			want:   decimal.NewFromInt(480),
		},
		{
			name:   "missing annual tier multiplies by twelve",
			plan:   Plan{Price: base},
			period: types.BILLING_PERIOD_ANNUAL,
			want:   decimal.NewFromInt(600),
		},
		{
			name: "zero tier price falls back to multiplication",
			plan: Plan{
				Price:          base,
				PriceQuarterly: decimal.NewNullDecimal(decimal.Zero),
			},
			period: types.BILLING_PERIOD_QUARTERLY,
			want:   decimal.NewFromInt(150),
		},
		{
			name: "invalid tier decimal falls back to multiplication",
			plan: Plan{
				Price: base,
				PriceBiannual: decimal.NullDecimal{
					Decimal: decimal.NewFromInt(250),
					Valid:   false,
				},
			},
			period: types.BILLING_PERIOD_BIANNUAL,
			want:   decimal.NewFromInt(300),
		},
		{
			name:   "unknown period resolves to base price",
			plan:   Plan{Price: base},
			period: types.BillingPeriod("weekly"),
			want:   base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.plan.SelectPrice(tt.period)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}
