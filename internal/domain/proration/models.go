package proration

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpgradeParams are the inputs to an upgrade quote. All fields are read
// from the current subscription and the target plan; AsOf is the wall-clock
// time the quote is computed at.
type UpgradeParams struct {
	// CurrentAmountCents is what the customer paid for the running period.
	CurrentAmountCents int64
	// CurrentPeriodStart and CurrentPeriodEnd bound the running period.
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	// NewPlanPrice is the target plan's price for the requested billing
	// period, in currency units.
	NewPlanPrice decimal.Decimal
	// AsOf is the moment the upgrade is requested.
	AsOf time.Time
}

// UpgradeQuote is the deterministic result of prorating an upgrade.
// Credit is the unused value of the current period; NewPlanCost is what the
// target plan costs for the remaining days; AmountToPayCents is the net
// amount owed after applying the credit, never negative.
type UpgradeQuote struct {
	TotalDaysInPeriod int
	RemainingDays     int
	CurrentDailyRate  decimal.Decimal
	Credit            decimal.Decimal
	NewPlanPrice      decimal.Decimal
	NewDailyRate      decimal.Decimal
	NewPlanCost       decimal.Decimal
	AmountToPay       decimal.Decimal
	AmountToPayCents  int64
}

// IsFullyCovered reports whether the accrued credit covers the new plan's
// remaining cost outright, so no payment step is needed.
func (q *UpgradeQuote) IsFullyCovered() bool {
	return q.AmountToPayCents <= 0
}

// RemainingCredit is the credit left over after paying for the new plan's
// remaining cost. Only meaningful when the quote is fully covered.
func (q *UpgradeQuote) RemainingCredit() decimal.Decimal {
	remaining := q.Credit.Sub(q.NewPlanCost)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
