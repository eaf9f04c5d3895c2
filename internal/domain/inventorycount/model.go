package inventorycount

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/types"
)

// InventoryCount is a stock-taking session. Opening one snapshots the
// expected quantity of every counted product; closing it produces variance
// lines and optionally applies stock adjustments.
type InventoryCount struct {
	ID                 string                     `db:"id" json:"id"`
	CountStatus        types.InventoryCountStatus `db:"count_status" json:"count_status"`
	Notes              string                     `db:"notes" json:"notes"`
	StartedAt          time.Time                  `db:"started_at" json:"started_at"`
	ClosedAt           *time.Time                 `db:"closed_at" json:"closed_at,omitempty"`
	AdjustmentsApplied bool                       `db:"adjustments_applied" json:"adjustments_applied"`
	types.BaseModel

	Lines []*Line `db:"-" json:"lines,omitempty"`
}

// Line is one product in a count session. ExpectedQuantity is the stock
// level snapshotted when the session opened; CountedQuantity is nil until
// someone records a physical count.
type Line struct {
	ID               string `db:"id" json:"id"`
	InventoryCountID string `db:"inventory_count_id" json:"inventory_count_id"`
	ProductID        string `db:"product_id" json:"product_id"`
	ExpectedQuantity int    `db:"expected_quantity" json:"expected_quantity"`
	CountedQuantity  *int   `db:"counted_quantity" json:"counted_quantity,omitempty"`
	types.BaseModel
}

// Variance is counted minus expected; zero when nothing was recorded yet
func (l *Line) Variance() int {
	if l.CountedQuantity == nil {
		return 0
	}
	return *l.CountedQuantity - l.ExpectedQuantity
}

// IsCounted reports whether a physical count was recorded for this line
func (l *Line) IsCounted() bool {
	return l.CountedQuantity != nil
}

// New builds a count session with defaults applied from the request context
func New(ctx context.Context) *InventoryCount {
	return &InventoryCount{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVENTORY_COUNT),
		CountStatus: types.InventoryCountStatusOpen,
		StartedAt:   time.Now().UTC(),
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// NewLine builds a line for the given count session
func NewLine(ctx context.Context, countID string) *Line {
	return &Line{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COUNT_LINE),
		InventoryCountID: countID,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
}
