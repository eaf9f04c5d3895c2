package sale

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/types"
)

// Sale is a completed point-of-sale transaction. Creating one decrements
// product stock for every line inside the same transaction.
type Sale struct {
	ID             string              `db:"id" json:"id"`
	Number         string              `db:"number" json:"number"`
	CustomerID     *string             `db:"customer_id" json:"customer_id,omitempty"`
	PaymentMethod  types.PaymentMethod `db:"payment_method" json:"payment_method"`
	SaleStatus     types.SaleStatus    `db:"sale_status" json:"sale_status"`
	Subtotal       decimal.Decimal     `db:"subtotal" json:"subtotal"`
	DiscountAmount decimal.Decimal     `db:"discount_amount" json:"discount_amount"`
	TotalAmount    decimal.Decimal     `db:"total_amount" json:"total_amount"`
	Notes          string              `db:"notes" json:"notes"`
	types.BaseModel

	LineItems []*LineItem `db:"-" json:"line_items,omitempty"`
}

// LineItem is one sold product on a sale
type LineItem struct {
	ID          string          `db:"id" json:"id"`
	SaleID      string          `db:"sale_id" json:"sale_id"`
	ProductID   string          `db:"product_id" json:"product_id"`
	Description string          `db:"description" json:"description"`
	Quantity    int             `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	types.BaseModel
}

// LineTotal is the price of the full sold quantity
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// ComputeTotals recalculates Subtotal and TotalAmount from the line items
// and the discount. TotalAmount never goes below zero.
func (s *Sale) ComputeTotals() {
	subtotal := decimal.Zero
	for _, li := range s.LineItems {
		subtotal = subtotal.Add(li.LineTotal())
	}
	s.Subtotal = subtotal
	total := subtotal.Sub(s.DiscountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	s.TotalAmount = total
}

// New builds a sale with defaults applied from the request context
func New(ctx context.Context) *Sale {
	return &Sale{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SALE),
		Number:         types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_SALE),
		SaleStatus:     types.SaleStatusCompleted,
		DiscountAmount: decimal.Zero,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

// NewLineItem builds a line item for the given sale
func NewLineItem(ctx context.Context, saleID string) *LineItem {
	return &LineItem{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SALE_ITEM),
		SaleID:    saleID,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}
