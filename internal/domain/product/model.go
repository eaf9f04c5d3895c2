package product

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/types"
)

// Product is a stocked item sold at the point of sale and replenished
// through purchase orders.
type Product struct {
	ID            string          `db:"id" json:"id"`
	SKU           string          `db:"sku" json:"sku"`
	Barcode       string          `db:"barcode" json:"barcode"`
	Name          string          `db:"name" json:"name"`
	Description   string          `db:"description" json:"description"`
	Category      string          `db:"category" json:"category"`
	SupplierID    *string         `db:"supplier_id" json:"supplier_id,omitempty"`
	Unit          string          `db:"unit" json:"unit"`
	CostPrice     decimal.Decimal `db:"cost_price" json:"cost_price"`
	SalePrice     decimal.Decimal `db:"sale_price" json:"sale_price"`
	StockQuantity int             `db:"stock_quantity" json:"stock_quantity"`
	MinStock      int             `db:"min_stock" json:"min_stock"`
	types.BaseModel
}

// IsLowStock reports whether the product is at or below its reorder level
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinStock
}

// New builds a product with defaults applied from the request context
func New(ctx context.Context) *Product {
	return &Product{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Unit:      "un",
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}
