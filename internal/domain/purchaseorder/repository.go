package purchaseorder

import (
	"context"

	"github.com/vendrahq/vendra/internal/types"
)

// Repository defines the interface for purchase order persistence
type Repository interface {
	// Create persists the order and its line items
	Create(ctx context.Context, po *PurchaseOrder) error
	// Get returns the order with line items loaded
	Get(ctx context.Context, id string) (*PurchaseOrder, error)
	List(ctx context.Context, filter *types.PurchaseOrderFilter) ([]*PurchaseOrder, error)
	Update(ctx context.Context, po *PurchaseOrder) error
}
