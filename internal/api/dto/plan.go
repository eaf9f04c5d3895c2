package dto

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/domain/plan"
	"github.com/vendrahq/vendra/internal/validator"
)

// CreatePlanRequest represents the request payload for creating a plan
type CreatePlanRequest struct {
	Name           string          `json:"name" binding:"required" validate:"required"`
	LookupKey      string          `json:"lookup_key" validate:"omitempty"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	PriceQuarterly *decimal.Decimal `json:"price_quarterly,omitempty"`
	PriceBiannual  *decimal.Decimal `json:"price_biannual,omitempty"`
	PriceAnnual    *decimal.Decimal `json:"price_annual,omitempty"`
	Currency       string          `json:"currency" validate:"omitempty,len=3"`
}

func (r *CreatePlanRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreatePlanRequest) ToPlan(ctx context.Context) *plan.Plan {
	p := plan.New(ctx)
	p.Name = r.Name
	p.LookupKey = r.LookupKey
	p.Description = r.Description
	p.Price = r.Price
	p.Currency = r.Currency
	if p.Currency == "" {
		p.Currency = "usd"
	}
	if r.PriceQuarterly != nil {
		p.PriceQuarterly = decimal.NullDecimal{Decimal: *r.PriceQuarterly, Valid: true}
	}
	if r.PriceBiannual != nil {
		p.PriceBiannual = decimal.NullDecimal{Decimal: *r.PriceBiannual, Valid: true}
	}
	if r.PriceAnnual != nil {
		p.PriceAnnual = decimal.NullDecimal{Decimal: *r.PriceAnnual, Valid: true}
	}
	return p
}

// UpdatePlanRequest represents the request payload for updating a plan
type UpdatePlanRequest struct {
	Name           *string          `json:"name,omitempty"`
	LookupKey      *string          `json:"lookup_key,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	PriceQuarterly *decimal.Decimal `json:"price_quarterly,omitempty"`
	PriceBiannual  *decimal.Decimal `json:"price_biannual,omitempty"`
	PriceAnnual    *decimal.Decimal `json:"price_annual,omitempty"`
}

func (r *UpdatePlanRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// PlanResponse represents the plan response structure
type PlanResponse struct {
	*plan.Plan
}

// ListPlansResponse represents a paginated plan listing
type ListPlansResponse struct {
	Items []*PlanResponse `json:"items"`
	Total int             `json:"total"`
}
