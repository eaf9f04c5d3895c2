package proration

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/vendrahq/vendra/internal/errors"
)

// daysInMonth is the fixed month length used to derive the target plan's
// daily rate regardless of the calendar month the upgrade lands in.
const daysInMonth = 30

var (
	oneHundred  = decimal.NewFromInt(100)
	monthLength = decimal.NewFromInt(daysInMonth)
)

// Calculator produces upgrade quotes with calendar-day granularity.
// Fractional days always round up, so a period entered is a period counted.
type Calculator struct{}

// NewCalculator creates a day-based proration calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// QuoteUpgrade computes the prorated credit for the unused portion of the
// current period and the cost of the new plan for the remaining days.
// It is a pure function of its params.
//
// The quote is still produced when the period has already expired
// (RemainingDays == 0); callers decide whether that is an error.
func (c *Calculator) QuoteUpgrade(params UpgradeParams) (*UpgradeQuote, error) {
	totalDays := ceilDays(params.CurrentPeriodStart, params.CurrentPeriodEnd)
	if totalDays <= 0 {
		return nil, ierr.NewError("invalid billing period").
			WithHint("Current billing period has a non-positive length").
			WithReportableDetails(map[string]any{
				"period_start": params.CurrentPeriodStart,
				"period_end":   params.CurrentPeriodEnd,
			}).
			Mark(ierr.ErrValidation)
	}

	remainingDays := ceilDays(params.AsOf, params.CurrentPeriodEnd)
	if remainingDays < 0 {
		remainingDays = 0
	}

	currentAmount := decimal.NewFromInt(params.CurrentAmountCents).Div(oneHundred)
	currentDailyRate := currentAmount.Div(decimal.NewFromInt(int64(totalDays)))
	credit := currentDailyRate.Mul(decimal.NewFromInt(int64(remainingDays)))

	newDailyRate := params.NewPlanPrice.Div(monthLength)
	newPlanCost := newDailyRate.Mul(decimal.NewFromInt(int64(remainingDays)))

	amountToPay := newPlanCost.Sub(credit)
	if amountToPay.IsNegative() {
		amountToPay = decimal.Zero
	}
	amountToPayCents := amountToPay.Mul(oneHundred).Round(0).IntPart()

	return &UpgradeQuote{
		TotalDaysInPeriod: totalDays,
		RemainingDays:     remainingDays,
		CurrentDailyRate:  currentDailyRate,
		Credit:            credit,
		NewPlanPrice:      params.NewPlanPrice,
		NewDailyRate:      newDailyRate,
		NewPlanCost:       newPlanCost,
		AmountToPay:       amountToPay,
		AmountToPayCents:  amountToPayCents,
	}, nil
}

// ceilDays returns the number of calendar days between from and to,
// rounding partial days up. Negative when to precedes from.
func ceilDays(from, to time.Time) int {
	hours := to.Sub(from).Hours()
	return int(math.Ceil(hours / 24))
}
