package inventorycount

import (
	"context"

	"github.com/vendrahq/vendra/internal/types"
)

// Repository defines the interface for inventory count persistence
type Repository interface {
	// Create persists the session and its lines
	Create(ctx context.Context, count *InventoryCount) error
	// Get returns the session with lines loaded
	Get(ctx context.Context, id string) (*InventoryCount, error)
	List(ctx context.Context, filter *types.InventoryCountFilter) ([]*InventoryCount, error)
	Update(ctx context.Context, count *InventoryCount) error
	// UpdateLine records a counted quantity on a single line
	UpdateLine(ctx context.Context, line *Line) error
}
