package proration

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ierr "github.com/vendrahq/vendra/internal/errors"
)

func TestQuoteUpgrade(t *testing.T) {
	calc := NewCalculator()

	periodStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 0, 30)

	t.Run("mid period upgrade with ten days left", func(t *testing.T) {
		quote, err := calc.QuoteUpgrade(UpgradeParams{
			CurrentAmountCents: 12000,
			CurrentPeriodStart: periodStart,
			CurrentPeriodEnd:   periodEnd,
			NewPlanPrice:       decimal.NewFromInt(300),
			AsOf:               periodEnd.AddDate(0, 0, -10),
		})
		require.NoError(t, err)

		assert.Equal(t, 30, quote.TotalDaysInPeriod)
		assert.Equal(t, 10, quote.RemainingDays)
		assert.True(t, quote.CurrentDailyRate.Equal(decimal.NewFromInt(4)),
			"daily rate %s", quote.CurrentDailyRate)
		assert.True(t, quote.Credit.Equal(decimal.NewFromInt(40)),
			"credit %s", quote.Credit)
		assert.True(t, quote.NewDailyRate.Equal(decimal.NewFromInt(10)),
			"new daily rate %s", quote.NewDailyRate)
		assert.True(t, quote.NewPlanCost.Equal(decimal.NewFromInt(100)),
			"new plan cost %s", quote.NewPlanCost)
		assert.Equal(t, int64(6000), quote.AmountToPayCents)
		assert.False(t, quote.IsFullyCovered())
	})

	t.Run("credit covers new plan cost", func(t *testing.T) {
		// Expensive current plan, cheap target: credit exceeds cost.
		quote, err := calc.QuoteUpgrade(UpgradeParams{
			CurrentAmountCents: 30000,
			CurrentPeriodStart: periodStart,
			CurrentPeriodEnd:   periodEnd,
			NewPlanPrice:       decimal.NewFromInt(60),
			AsOf:               periodEnd.AddDate(0, 0, -10),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(0), quote.AmountToPayCents)
		assert.True(t, quote.AmountToPay.IsZero())
		assert.True(t, quote.IsFullyCovered())
		// Credit 100, cost 20, so 80 remains.
		assert.True(t, quote.RemainingCredit().Equal(decimal.NewFromInt(80)),
			"remaining credit %s", quote.RemainingCredit())
	})

	t.Run("expired period yields zero remaining days", func(t *testing.T) {
		quote, err := calc.QuoteUpgrade(UpgradeParams{
			CurrentAmountCents: 12000,
			CurrentPeriodStart: periodStart,
			CurrentPeriodEnd:   periodEnd,
			NewPlanPrice:       decimal.NewFromInt(300),
			AsOf:               periodEnd.AddDate(0, 0, 5),
		})
		require.NoError(t, err)

		assert.Equal(t, 0, quote.RemainingDays)
		assert.True(t, quote.Credit.IsZero())
		assert.True(t, quote.NewPlanCost.IsZero())
		assert.True(t, quote.IsFullyCovered())
	})

	t.Run("partial days round up", func(t *testing.T) {
		// 9 days and one hour left counts as 10 billable days.
		quote, err := calc.QuoteUpgrade(UpgradeParams{
			CurrentAmountCents: 12000,
			CurrentPeriodStart: periodStart,
			CurrentPeriodEnd:   periodEnd,
			NewPlanPrice:       decimal.NewFromInt(300),
			AsOf:               periodEnd.Add(-9*24*time.Hour - time.Hour),
		})
		require.NoError(t, err)

		assert.Equal(t, 10, quote.RemainingDays)
	})

	t.Run("non positive period is rejected", func(t *testing.T) {
		quote, err := calc.QuoteUpgrade(UpgradeParams{
			CurrentAmountCents: 12000,
			CurrentPeriodStart: periodEnd,
			CurrentPeriodEnd:   periodStart,
			NewPlanPrice:       decimal.NewFromInt(300),
			AsOf:               periodStart,
		})
		require.Error(t, err)
		assert.Nil(t, quote)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("cents are rounded to the nearest integer", func(t *testing.T) {
		// 10000 cents over 30 days = 3.3333/day; 7 days left.
		quote, err := calc.QuoteUpgrade(UpgradeParams{
			CurrentAmountCents: 10000,
			CurrentPeriodStart: periodStart,
			CurrentPeriodEnd:   periodEnd,
			NewPlanPrice:       decimal.NewFromInt(150),
			AsOf:               periodEnd.AddDate(0, 0, -7),
		})
		require.NoError(t, err)

		// Credit 2333.33 cents, cost 3500 cents, net 1166.67 rounds to 1167.
		assert.Equal(t, int64(1167), quote.AmountToPayCents)
	})
}

func TestCeilDays(t *testing.T) {
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"exact days", base, base.AddDate(0, 0, 3), 3},
		{"partial day rounds up", base, base.Add(49 * time.Hour), 3},
		{"one minute counts as a day", base, base.Add(time.Minute), 1},
		{"zero span", base, base, 0},
		{"negative span", base.AddDate(0, 0, 2), base, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ceilDays(tt.from, tt.to))
		})
	}
}
