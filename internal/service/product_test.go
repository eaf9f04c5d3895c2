package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vendrahq/vendra/internal/api/dto"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/testutil"
	"github.com/vendrahq/vendra/internal/types"
)

type ProductServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProductService
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}

func (s *ProductServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewProductService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *ProductServiceSuite) createProduct(sku, name string, stock, minStock int) *dto.ProductResponse {
	resp, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		SKU:           sku,
		Name:          name,
		SalePrice:     decimal.NewFromInt(10),
		StockQuantity: stock,
		MinStock:      minStock,
	})
	s.NoError(err)
	return resp
}

func (s *ProductServiceSuite) TestCreateProduct() {
	resp := s.createProduct("CF-001", "Coffee", 12, 5)
	s.Equal("CF-001", resp.SKU)
	s.Equal("un", resp.Unit)
	s.Equal(12, resp.StockQuantity)
	s.False(resp.LowStock)
}

func (s *ProductServiceSuite) TestCreateProductUnknownSupplier() {
	_, err := s.service.CreateProduct(s.GetContext(), dto.CreateProductRequest{
		SKU:        "CF-001",
		Name:       "Coffee",
		SalePrice:  decimal.NewFromInt(10),
		SupplierID: lo.ToPtr("supl_missing"),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ProductServiceSuite) TestAdjustStock() {
	created := s.createProduct("CF-001", "Coffee", 12, 5)

	resp, err := s.service.AdjustStock(s.GetContext(), created.ID, dto.AdjustStockRequest{
		Delta:  -4,
		Reason: "breakage",
	})
	s.NoError(err)
	s.Equal(8, resp.StockQuantity)

	resp, err = s.service.AdjustStock(s.GetContext(), created.ID, dto.AdjustStockRequest{
		Delta: -4,
	})
	s.NoError(err)
	s.Equal(4, resp.StockQuantity)
	s.True(resp.LowStock)
}

func (s *ProductServiceSuite) TestAdjustStockBelowZeroRejected() {
	created := s.createProduct("CF-001", "Coffee", 3, 1)

	_, err := s.service.AdjustStock(s.GetContext(), created.ID, dto.AdjustStockRequest{
		Delta: -5,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	unchanged, err := s.service.GetProduct(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(3, unchanged.StockQuantity)
}

func (s *ProductServiceSuite) TestListProductsLowStock() {
	s.createProduct("CF-001", "Coffee", 12, 5)
	s.createProduct("FL-001", "Filter", 2, 10)
	s.createProduct("MG-001", "Mug", 0, 0)

	resp, err := s.service.ListProducts(s.GetContext(), &types.ProductFilter{
		LowStock: true,
	})
	s.NoError(err)
	s.Equal(2, resp.Total)
	for _, item := range resp.Items {
		s.True(item.LowStock)
	}
}

func (s *ProductServiceSuite) TestListProductsSearch() {
	s.createProduct("CF-001", "Coffee", 12, 5)
	s.createProduct("FL-001", "Filter", 2, 10)

	resp, err := s.service.ListProducts(s.GetContext(), &types.ProductFilter{
		Search: "coff",
	})
	s.NoError(err)
	s.Equal(1, resp.Total)
	s.Equal("Coffee", resp.Items[0].Name)
}

func (s *ProductServiceSuite) TestUpdateProduct() {
	created := s.createProduct("CF-001", "Coffee", 12, 5)

	resp, err := s.service.UpdateProduct(s.GetContext(), created.ID, dto.UpdateProductRequest{
		Name:      lo.ToPtr("Coffee Premium"),
		SalePrice: lo.ToPtr(decimal.NewFromInt(15)),
	})
	s.NoError(err)
	s.Equal("Coffee Premium", resp.Name)
	s.True(resp.SalePrice.Equal(decimal.NewFromInt(15)))
}

func (s *ProductServiceSuite) TestDeleteProduct() {
	created := s.createProduct("CF-001", "Coffee", 12, 5)
	s.NoError(s.service.DeleteProduct(s.GetContext(), created.ID))

	_, err := s.service.GetProduct(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
