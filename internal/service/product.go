package service

import (
	"context"

	"github.com/vendrahq/vendra/internal/api/dto"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, filter *types.ProductFilter) (*dto.ListProductsResponse, error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	// AdjustStock applies a manual stock correction outside the sale and
	// purchase order flows.
	AdjustStock(ctx context.Context, id string, req dto.AdjustStockRequest) (*dto.ProductResponse, error)
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{ServiceParams: params}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.SupplierID != nil {
		if _, err := s.SupplierRepo.Get(ctx, *req.SupplierID); err != nil {
			return nil, err
		}
	}

	p := req.ToProduct(ctx)
	if err := s.ProductRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created product", "product_id", p.ID, "sku", p.SKU)
	return dto.ToProductResponse(p), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

func (s *productService) ListProducts(ctx context.Context, filter *types.ProductFilter) (*dto.ListProductsResponse, error) {
	products, err := s.ProductRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ProductRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListProductsResponse{
		Items: make([]*dto.ProductResponse, len(products)),
		Total: total,
	}
	for i, p := range products {
		resp.Items[i] = dto.ToProductResponse(p)
	}
	return resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Barcode != nil {
		p.Barcode = *req.Barcode
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.SupplierID != nil {
		if _, err := s.SupplierRepo.Get(ctx, *req.SupplierID); err != nil {
			return nil, err
		}
		p.SupplierID = req.SupplierID
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}
	if req.SalePrice != nil {
		p.SalePrice = *req.SalePrice
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}

	if err := s.ProductRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(p), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.ProductRepo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.ProductRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Infow("deleted product", "product_id", id)
	return nil
}

func (s *productService) AdjustStock(ctx context.Context, id string, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Delta == 0 {
		return nil, ierr.NewError("stock adjustment delta is zero").
			WithHint("Delta must be a non-zero quantity").
			Mark(ierr.ErrValidation)
	}

	if err := s.ProductRepo.AdjustStock(ctx, id, req.Delta); err != nil {
		return nil, err
	}

	p, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("adjusted product stock",
		"product_id", id,
		"delta", req.Delta,
		"reason", req.Reason,
		"stock_quantity", p.StockQuantity)
	return dto.ToProductResponse(p), nil
}
