package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/product"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/testutil"
	"github.com/vendrahq/vendra/internal/types"
)

type SaleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SaleService
}

func TestSaleService(t *testing.T) {
	suite.Run(t, new(SaleServiceSuite))
}

func (s *SaleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSaleService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *SaleServiceSuite) seedProduct(name string, salePrice int64, stock int) *product.Product {
	p := product.New(s.GetContext())
	p.Name = name
	p.SKU = "SKU-" + name
	p.SalePrice = decimal.NewFromInt(salePrice)
	p.StockQuantity = stock
	s.NoError(s.GetStores().ProductRepo.Create(s.GetContext(), p))
	return p
}

func (s *SaleServiceSuite) TestCreateSaleDecrementsStock() {
	coffee := s.seedProduct("Coffee", 25, 10)
	filter := s.seedProduct("Filter", 8, 40)

	resp, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod: types.PaymentMethodCard,
		LineItems: []*dto.SaleLineRequest{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: filter.ID, Quantity: 5},
		},
	})
	s.NoError(err)
	s.Equal(types.SaleStatusCompleted, resp.SaleStatus)
	s.NotEmpty(resp.Number)
	s.Len(resp.LineItems, 2)

	// 2x25 + 5x8 = 90, no discount.
	s.True(resp.Subtotal.Equal(decimal.NewFromInt(90)), "subtotal %s", resp.Subtotal)
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(90)), "total %s", resp.TotalAmount)

	updatedCoffee, err := s.GetStores().ProductRepo.Get(s.GetContext(), coffee.ID)
	s.NoError(err)
	s.Equal(8, updatedCoffee.StockQuantity)

	updatedFilter, err := s.GetStores().ProductRepo.Get(s.GetContext(), filter.ID)
	s.NoError(err)
	s.Equal(35, updatedFilter.StockQuantity)
}

func (s *SaleServiceSuite) TestCreateSaleWithDiscountAndCustomPrice() {
	coffee := s.seedProduct("Coffee", 25, 10)

	resp, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod:  types.PaymentMethodCash,
		DiscountAmount: decimal.NewFromInt(5),
		LineItems: []*dto.SaleLineRequest{
			{ProductID: coffee.ID, Quantity: 2, UnitPrice: lo.ToPtr(decimal.NewFromInt(20))},
		},
	})
	s.NoError(err)
	s.True(resp.Subtotal.Equal(decimal.NewFromInt(40)), "subtotal %s", resp.Subtotal)
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(35)), "total %s", resp.TotalAmount)
}

func (s *SaleServiceSuite) TestCreateSaleInsufficientStock() {
	coffee := s.seedProduct("Coffee", 25, 1)

	resp, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod: types.PaymentMethodCash,
		LineItems: []*dto.SaleLineRequest{
			{ProductID: coffee.ID, Quantity: 3},
		},
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SaleServiceSuite) TestCreateSaleNegativeDiscountRejected() {
	coffee := s.seedProduct("Coffee", 25, 10)

	_, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod:  types.PaymentMethodCash,
		DiscountAmount: decimal.NewFromInt(-1),
		LineItems: []*dto.SaleLineRequest{
			{ProductID: coffee.ID, Quantity: 1},
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SaleServiceSuite) TestCreateSaleUnknownCustomer() {
	coffee := s.seedProduct("Coffee", 25, 10)
	missing := "cust_missing"

	_, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		CustomerID:    &missing,
		PaymentMethod: types.PaymentMethodCash,
		LineItems: []*dto.SaleLineRequest{
			{ProductID: coffee.ID, Quantity: 1},
		},
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SaleServiceSuite) TestVoidSaleRestoresStock() {
	coffee := s.seedProduct("Coffee", 25, 10)

	created, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod: types.PaymentMethodPix,
		LineItems: []*dto.SaleLineRequest{
			{ProductID: coffee.ID, Quantity: 4},
		},
	})
	s.NoError(err)

	voided, err := s.service.VoidSale(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.SaleStatusVoided, voided.SaleStatus)

	restored, err := s.GetStores().ProductRepo.Get(s.GetContext(), coffee.ID)
	s.NoError(err)
	s.Equal(10, restored.StockQuantity)
}

func (s *SaleServiceSuite) TestVoidSaleTwiceRejected() {
	coffee := s.seedProduct("Coffee", 25, 10)

	created, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod: types.PaymentMethodPix,
		LineItems: []*dto.SaleLineRequest{
			{ProductID: coffee.ID, Quantity: 1},
		},
	})
	s.NoError(err)

	_, err = s.service.VoidSale(s.GetContext(), created.ID)
	s.NoError(err)

	_, err = s.service.VoidSale(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SaleServiceSuite) TestGetDailySummary() {
	coffee := s.seedProduct("Coffee", 25, 100)

	_, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod: types.PaymentMethodCash,
		LineItems:     []*dto.SaleLineRequest{{ProductID: coffee.ID, Quantity: 2}},
	})
	s.NoError(err)

	_, err = s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod:  types.PaymentMethodCard,
		DiscountAmount: decimal.NewFromInt(10),
		LineItems:      []*dto.SaleLineRequest{{ProductID: coffee.ID, Quantity: 4}},
	})
	s.NoError(err)

	// Voided sales drop out of the summary.
	voidMe, err := s.service.CreateSale(s.GetContext(), dto.CreateSaleRequest{
		PaymentMethod: types.PaymentMethodCash,
		LineItems:     []*dto.SaleLineRequest{{ProductID: coffee.ID, Quantity: 1}},
	})
	s.NoError(err)
	_, err = s.service.VoidSale(s.GetContext(), voidMe.ID)
	s.NoError(err)

	summary, err := s.service.GetDailySummary(s.GetContext(), time.Now().UTC())
	s.NoError(err)
	s.Equal(2, summary.SaleCount)
	s.True(summary.GrossAmount.Equal(decimal.NewFromInt(150)), "gross %s", summary.GrossAmount)
	s.True(summary.DiscountTotal.Equal(decimal.NewFromInt(10)), "discount %s", summary.DiscountTotal)
	s.True(summary.NetAmount.Equal(decimal.NewFromInt(140)), "net %s", summary.NetAmount)
	s.True(summary.ByMethod["cash"].Equal(decimal.NewFromInt(50)), "cash %s", summary.ByMethod["cash"])
	s.True(summary.ByMethod["card"].Equal(decimal.NewFromInt(90)), "card %s", summary.ByMethod["card"])
}

func (s *SaleServiceSuite) TestGetDailySummaryEmptyDay() {
	summary, err := s.service.GetDailySummary(s.GetContext(), time.Now().UTC().AddDate(0, 0, -7))
	s.NoError(err)
	s.Zero(summary.SaleCount)
	s.True(summary.NetAmount.IsZero())
}
