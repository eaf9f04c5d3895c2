package types

import (
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/samber/lo"
)

// PurchaseOrderStatus tracks the lifecycle of a purchase order.
// draft -> sent -> received | cancelled
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSent      PurchaseOrderStatus = "sent"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

func (s PurchaseOrderStatus) String() string {
	return string(s)
}

func (s PurchaseOrderStatus) Validate() error {
	allowed := []PurchaseOrderStatus{
		PurchaseOrderStatusDraft,
		PurchaseOrderStatusSent,
		PurchaseOrderStatusReceived,
		PurchaseOrderStatusCancelled,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid purchase order status").
			WithHint("Invalid purchase order status").
			WithReportableDetails(map[string]any{
				"status":  s,
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s PurchaseOrderStatus) IsTerminal() bool {
	return s == PurchaseOrderStatusReceived || s == PurchaseOrderStatusCancelled
}

// PurchaseOrderFilter defines filters for listing purchase orders
type PurchaseOrderFilter struct {
	*QueryFilter
	*TimeRangeFilter
	SupplierID          string              `json:"supplier_id,omitempty" form:"supplier_id"`
	PurchaseOrderStatus PurchaseOrderStatus `json:"purchase_order_status,omitempty" form:"purchase_order_status"`
}

func (f *PurchaseOrderFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *PurchaseOrderFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *PurchaseOrderFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}
	if f.PurchaseOrderStatus != "" {
		if err := f.PurchaseOrderStatus.Validate(); err != nil {
			return err
		}
	}
	return nil
}
