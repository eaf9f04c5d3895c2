package product

import (
	"context"

	"github.com/vendrahq/vendra/internal/types"
)

// Repository defines the interface for product persistence
type Repository interface {
	Create(ctx context.Context, product *Product) error
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter *types.ProductFilter) ([]*Product, error)
	Count(ctx context.Context, filter *types.ProductFilter) (int, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	// AdjustStock atomically changes the stock quantity by delta (negative
	// to decrement). Implementations must reject adjustments that would
	// drive the quantity below zero.
	AdjustStock(ctx context.Context, id string, delta int) error
}
