package dto

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/domain/product"
	"github.com/vendrahq/vendra/internal/validator"
)

// CreateProductRequest represents the request payload for creating a product
type CreateProductRequest struct {
	SKU           string          `json:"sku" binding:"required" validate:"required"`
	Barcode       string          `json:"barcode"`
	Name          string          `json:"name" binding:"required" validate:"required"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	SupplierID    *string         `json:"supplier_id,omitempty"`
	Unit          string          `json:"unit"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price" binding:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	MinStock      int             `json:"min_stock" validate:"min=0"`
}

func (r *CreateProductRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateProductRequest) ToProduct(ctx context.Context) *product.Product {
	p := product.New(ctx)
	p.SKU = r.SKU
	p.Barcode = r.Barcode
	p.Name = r.Name
	p.Description = r.Description
	p.Category = r.Category
	p.SupplierID = r.SupplierID
	if r.Unit != "" {
		p.Unit = r.Unit
	}
	p.CostPrice = r.CostPrice
	p.SalePrice = r.SalePrice
	p.StockQuantity = r.StockQuantity
	p.MinStock = r.MinStock
	return p
}

// UpdateProductRequest represents the request payload for updating a product
type UpdateProductRequest struct {
	SKU         *string          `json:"sku,omitempty"`
	Barcode     *string          `json:"barcode,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	SupplierID  *string          `json:"supplier_id,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	CostPrice   *decimal.Decimal `json:"cost_price,omitempty"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	MinStock    *int             `json:"min_stock,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateProductRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// AdjustStockRequest applies a manual stock correction
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required" validate:"required"`
	Reason string `json:"reason"`
}

func (r *AdjustStockRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ProductResponse represents the product response structure
type ProductResponse struct {
	*product.Product
	LowStock bool `json:"low_stock"`
}

func ToProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{Product: p, LowStock: p.IsLowStock()}
}

// ListProductsResponse represents a paginated product listing
type ListProductsResponse struct {
	Items []*ProductResponse `json:"items"`
	Total int                `json:"total"`
}
