package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/domain/purchaseorder"
	"github.com/vendrahq/vendra/internal/types"
	"github.com/vendrahq/vendra/internal/validator"
)

// PurchaseOrderLineRequest is one ordered product on a create request
type PurchaseOrderLineRequest struct {
	ProductID   string          `json:"product_id" binding:"required" validate:"required"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" binding:"required" validate:"required,min=1"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest represents the request payload for creating a
// purchase order in draft state
type CreatePurchaseOrderRequest struct {
	SupplierID string                      `json:"supplier_id" binding:"required" validate:"required"`
	ExpectedAt *time.Time                  `json:"expected_at,omitempty"`
	Notes      string                      `json:"notes"`
	LineItems  []*PurchaseOrderLineRequest `json:"line_items" binding:"required" validate:"required,min=1,dive"`
}

func (r *CreatePurchaseOrderRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// TransitionPurchaseOrderRequest moves an order through its lifecycle
type TransitionPurchaseOrderRequest struct {
	Status types.PurchaseOrderStatus `json:"status" binding:"required" validate:"required"`
}

func (r *TransitionPurchaseOrderRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Status.Validate()
}

// PurchaseOrderResponse represents the purchase order response structure
type PurchaseOrderResponse struct {
	*purchaseorder.PurchaseOrder
}

// ListPurchaseOrdersResponse represents a purchase order listing
type ListPurchaseOrdersResponse struct {
	Items []*PurchaseOrderResponse `json:"items"`
	Total int                      `json:"total"`
}
