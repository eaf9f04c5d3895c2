package types

import (
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/samber/lo"
)

// PaymentMethod is how a point-of-sale transaction was settled.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodPix      PaymentMethod = "pix"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) Validate() error {
	allowed := []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodCard,
		PaymentMethodPix,
		PaymentMethodTransfer,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid payment method").
			WithHint("Invalid payment method").
			WithReportableDetails(map[string]any{
				"payment_method": m,
				"allowed":        allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// SaleStatus tracks the lifecycle of a sale.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusVoided    SaleStatus = "voided"
)

func (s SaleStatus) String() string {
	return string(s)
}

// SaleFilter defines filters for listing sales
type SaleFilter struct {
	*QueryFilter
	*TimeRangeFilter
	CustomerID    string        `json:"customer_id,omitempty" form:"customer_id"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty" form:"payment_method"`
	SaleStatus    SaleStatus    `json:"sale_status,omitempty" form:"sale_status"`
}

func (f *SaleFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *SaleFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *SaleFilter) Validate() error {
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
	if f.PaymentMethod != "" {
		if err := f.PaymentMethod.Validate(); err != nil {
			return err
		}
	}
	return nil
}
