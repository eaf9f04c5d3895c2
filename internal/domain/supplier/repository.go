package supplier

import (
	"context"

	"github.com/vendrahq/vendra/internal/types"
)

// Repository defines the interface for supplier persistence
type Repository interface {
	Create(ctx context.Context, supplier *Supplier) error
	Get(ctx context.Context, id string) (*Supplier, error)
	List(ctx context.Context, filter *types.SupplierFilter) ([]*Supplier, error)
	Update(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id string) error
}
