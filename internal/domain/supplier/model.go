package supplier

import (
	"context"

	"github.com/vendrahq/vendra/internal/types"
)

// Supplier is a vendor products are purchased from.
type Supplier struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	DocNumber string `db:"doc_number" json:"doc_number"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	Address   string `db:"address" json:"address"`
	Notes     string `db:"notes" json:"notes"`
	types.BaseModel
}

// New builds a supplier with defaults applied from the request context
func New(ctx context.Context) *Supplier {
	return &Supplier{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUPPLIER),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}
