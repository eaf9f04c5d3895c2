package types

import (
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/samber/lo"
)

// InventoryCountStatus tracks the lifecycle of a stock count session.
// open -> closed | abandoned
type InventoryCountStatus string

const (
	InventoryCountStatusOpen      InventoryCountStatus = "open"
	InventoryCountStatusClosed    InventoryCountStatus = "closed"
	InventoryCountStatusAbandoned InventoryCountStatus = "abandoned"
)

func (s InventoryCountStatus) String() string {
	return string(s)
}

func (s InventoryCountStatus) Validate() error {
	allowed := []InventoryCountStatus{
		InventoryCountStatusOpen,
		InventoryCountStatusClosed,
		InventoryCountStatusAbandoned,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid inventory count status").
			WithHint("Invalid inventory count status").
			WithReportableDetails(map[string]any{
				"status":  s,
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InventoryCountFilter defines filters for listing count sessions
type InventoryCountFilter struct {
	*QueryFilter
	*TimeRangeFilter
	CountStatus InventoryCountStatus `json:"count_status,omitempty" form:"count_status"`
}

func (f *InventoryCountFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *InventoryCountFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}
