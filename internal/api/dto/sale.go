package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/domain/sale"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
	"github.com/vendrahq/vendra/internal/validator"
)

// SaleLineRequest is one sold product on a create request. UnitPrice is
// optional; the product's sale price is used when omitted.
type SaleLineRequest struct {
	ProductID string           `json:"product_id" binding:"required" validate:"required"`
	Quantity  int              `json:"quantity" binding:"required" validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateSaleRequest represents the request payload for recording a sale
type CreateSaleRequest struct {
	CustomerID     *string             `json:"customer_id,omitempty"`
	PaymentMethod  types.PaymentMethod `json:"payment_method" binding:"required" validate:"required"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	Notes          string              `json:"notes"`
	LineItems      []*SaleLineRequest  `json:"line_items" binding:"required" validate:"required,min=1,dive"`
}

func (r *CreateSaleRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.DiscountAmount.IsNegative() {
		return ierr.NewError("discount cannot be negative").
			WithHint("Discount amount must be zero or positive").
			Mark(ierr.ErrValidation)
	}
	return r.PaymentMethod.Validate()
}

// SaleResponse represents the sale response structure
type SaleResponse struct {
	*sale.Sale
}

// ListSalesResponse represents a sale listing
type ListSalesResponse struct {
	Items []*SaleResponse `json:"items"`
	Total int             `json:"total"`
}

// DailySummaryResponse is the rollup of one day's completed sales
type DailySummaryResponse struct {
	Date          time.Time                  `json:"date"`
	SaleCount     int                        `json:"sale_count"`
	GrossAmount   decimal.Decimal            `json:"gross_amount"`
	DiscountTotal decimal.Decimal            `json:"discount_total"`
	NetAmount     decimal.Decimal            `json:"net_amount"`
	ByMethod      map[string]decimal.Decimal `json:"by_method"`
}

func ToDailySummaryResponse(s *sale.DailySummary) *DailySummaryResponse {
	byMethod := make(map[string]decimal.Decimal, len(s.ByMethod))
	for method, amount := range s.ByMethod {
		byMethod[method.String()] = amount
	}
	return &DailySummaryResponse{
		Date:          s.Date,
		SaleCount:     s.SaleCount,
		GrossAmount:   s.GrossAmount,
		DiscountTotal: s.DiscountTotal,
		NetAmount:     s.NetAmount,
		ByMethod:      byMethod,
	}
}
