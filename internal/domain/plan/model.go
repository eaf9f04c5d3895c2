package plan

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/types"
)

// Plan is a catalog entry a company can subscribe to. Price is the monthly
// base price; the tier prices are optional discounted totals for longer
// billing periods.
type Plan struct {
	ID             string              `db:"id" json:"id"`
	Name           string              `db:"name" json:"name"`
	LookupKey      string              `db:"lookup_key" json:"lookup_key"`
	Description    string              `db:"description" json:"description"`
	Price          decimal.Decimal     `db:"price" json:"price"`
	PriceQuarterly decimal.NullDecimal `db:"price_quarterly" json:"price_quarterly"`
	PriceBiannual  decimal.NullDecimal `db:"price_biannual" json:"price_biannual"`
	PriceAnnual    decimal.NullDecimal `db:"price_annual" json:"price_annual"`
	Currency       string              `db:"currency" json:"currency"`
	types.BaseModel
}

// SelectPrice resolves the price charged for the given billing period.
// A set tier price wins; otherwise the monthly price is multiplied by the
// number of months in the period. Unrecognized periods resolve to the
// monthly base price.
func (p *Plan) SelectPrice(period types.BillingPeriod) decimal.Decimal {
	switch period {
	case types.BILLING_PERIOD_MONTHLY:
		return p.Price
	case types.BILLING_PERIOD_QUARTERLY:
		return p.tierOrMultiplied(p.PriceQuarterly, period)
	case types.BILLING_PERIOD_BIANNUAL:
		return p.tierOrMultiplied(p.PriceBiannual, period)
	case types.BILLING_PERIOD_ANNUAL:
		return p.tierOrMultiplied(p.PriceAnnual, period)
	default:
		return p.Price
	}
}

func (p *Plan) tierOrMultiplied(tier decimal.NullDecimal, period types.BillingPeriod) decimal.Decimal {
	if tier.Valid && tier.Decimal.IsPositive() {
		return tier.Decimal
	}
	return p.Price.Mul(decimal.NewFromInt(int64(period.Months())))
}

// New builds a plan with defaults applied from the request context
func New(ctx context.Context) *Plan {
	return &Plan{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAN),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}
