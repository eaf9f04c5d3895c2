package purchaseorder

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/types"
)

// PurchaseOrder is a replenishment order placed with a supplier.
// Receiving it increments product stock for every line.
type PurchaseOrder struct {
	ID          string                    `db:"id" json:"id"`
	Number      string                    `db:"number" json:"number"`
	SupplierID  string                    `db:"supplier_id" json:"supplier_id"`
	POStatus    types.PurchaseOrderStatus `db:"po_status" json:"po_status"`
	ExpectedAt  *time.Time                `db:"expected_at" json:"expected_at,omitempty"`
	ReceivedAt  *time.Time                `db:"received_at" json:"received_at,omitempty"`
	TotalAmount decimal.Decimal           `db:"total_amount" json:"total_amount"`
	Notes       string                    `db:"notes" json:"notes"`
	types.BaseModel

	LineItems []*LineItem `db:"-" json:"line_items,omitempty"`
}

// LineItem is one ordered product on a purchase order
type LineItem struct {
	ID              string          `db:"id" json:"id"`
	PurchaseOrderID string          `db:"purchase_order_id" json:"purchase_order_id"`
	ProductID       string          `db:"product_id" json:"product_id"`
	Description     string          `db:"description" json:"description"`
	Quantity        int             `db:"quantity" json:"quantity"`
	UnitCost        decimal.Decimal `db:"unit_cost" json:"unit_cost"`
	types.BaseModel
}

// LineTotal is the cost of the full ordered quantity
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.UnitCost.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// ComputeTotal recalculates TotalAmount from the line items
func (po *PurchaseOrder) ComputeTotal() {
	total := decimal.Zero
	for _, li := range po.LineItems {
		total = total.Add(li.LineTotal())
	}
	po.TotalAmount = total
}

// CanTransitionTo validates the draft -> sent -> received|cancelled flow
func (po *PurchaseOrder) CanTransitionTo(next types.PurchaseOrderStatus) bool {
	switch po.POStatus {
	case types.PurchaseOrderStatusDraft:
		return next == types.PurchaseOrderStatusSent || next == types.PurchaseOrderStatusCancelled
	case types.PurchaseOrderStatusSent:
		return next == types.PurchaseOrderStatusReceived || next == types.PurchaseOrderStatusCancelled
	default:
		return false
	}
}

// New builds a purchase order with defaults applied from the request context
func New(ctx context.Context) *PurchaseOrder {
	return &PurchaseOrder{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PURCHASE_ORDER),
		Number:    types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_PURCHASE_ORDER),
		POStatus:  types.PurchaseOrderStatusDraft,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

// NewLineItem builds a line item for the given purchase order
func NewLineItem(ctx context.Context, purchaseOrderID string) *LineItem {
	return &LineItem{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PURCHASE_ITEM),
		PurchaseOrderID: purchaseOrderID,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}
