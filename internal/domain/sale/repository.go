package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/types"
)

// DailySummary aggregates a day's completed sales
type DailySummary struct {
	Date          time.Time                         `json:"date"`
	SaleCount     int                               `json:"sale_count"`
	GrossAmount   decimal.Decimal                   `json:"gross_amount"`
	DiscountTotal decimal.Decimal                   `json:"discount_total"`
	NetAmount     decimal.Decimal                   `json:"net_amount"`
	ByMethod      map[types.PaymentMethod]decimal.Decimal `json:"by_method"`
}

// Repository defines the interface for sale persistence
type Repository interface {
	// Create persists the sale and its line items
	Create(ctx context.Context, sale *Sale) error
	// Get returns the sale with line items loaded
	Get(ctx context.Context, id string) (*Sale, error)
	List(ctx context.Context, filter *types.SaleFilter) ([]*Sale, error)
	Update(ctx context.Context, sale *Sale) error
	// ListByDay returns all completed sales whose created_at falls on the
	// given calendar day in UTC.
	ListByDay(ctx context.Context, day time.Time) ([]*Sale, error)
}
