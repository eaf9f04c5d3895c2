package customer

import (
	"context"

	"github.com/vendrahq/vendra/internal/types"
)

// Customer is a buyer at the point of sale and a messaging campaign
// recipient. Phone is the messaging address; Tag groups customers into
// campaign audiences.
type Customer struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`
	Tag   string `db:"tag" json:"tag"`
	Notes string `db:"notes" json:"notes"`
	types.BaseModel
}

// New builds a customer with defaults applied from the request context
func New(ctx context.Context) *Customer {
	return &Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}
