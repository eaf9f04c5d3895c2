package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/product"
	"github.com/vendrahq/vendra/internal/domain/supplier"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/testutil"
	"github.com/vendrahq/vendra/internal/types"
)

type PurchaseOrderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PurchaseOrderService
}

func TestPurchaseOrderService(t *testing.T) {
	suite.Run(t, new(PurchaseOrderServiceSuite))
}

func (s *PurchaseOrderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPurchaseOrderService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *PurchaseOrderServiceSuite) seedSupplier(name string) *supplier.Supplier {
	sup := supplier.New(s.GetContext())
	sup.Name = name
	s.NoError(s.GetStores().SupplierRepo.Create(s.GetContext(), sup))
	return sup
}

func (s *PurchaseOrderServiceSuite) seedProduct(name string, costPrice int64, stock int) *product.Product {
	p := product.New(s.GetContext())
	p.Name = name
	p.SKU = "SKU-" + name
	p.CostPrice = decimal.NewFromInt(costPrice)
	p.StockQuantity = stock
	s.NoError(s.GetStores().ProductRepo.Create(s.GetContext(), p))
	return p
}

func (s *PurchaseOrderServiceSuite) TestCreatePurchaseOrder() {
	sup := s.seedSupplier("Acme Beans")
	coffee := s.seedProduct("Coffee", 12, 5)
	filter := s.seedProduct("Filter", 3, 20)

	resp, err := s.service.CreatePurchaseOrder(s.GetContext(), dto.CreatePurchaseOrderRequest{
		SupplierID: sup.ID,
		LineItems: []*dto.PurchaseOrderLineRequest{
			{ProductID: coffee.ID, Quantity: 10},
			{ProductID: filter.ID, Quantity: 50, UnitCost: decimal.NewFromInt(2)},
		},
	})
	s.NoError(err)
	s.Equal(types.PurchaseOrderStatusDraft, resp.POStatus)
	s.NotEmpty(resp.Number)
	s.Len(resp.LineItems, 2)

	// Line costs default to the product cost price when the request
	// leaves them zero: 10x12 + 50x2 = 220.
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(220)), "total %s", resp.TotalAmount)
	s.Equal("Coffee", resp.LineItems[0].Description)

	// Drafting an order never touches stock.
	unchanged, err := s.GetStores().ProductRepo.Get(s.GetContext(), coffee.ID)
	s.NoError(err)
	s.Equal(5, unchanged.StockQuantity)
}

func (s *PurchaseOrderServiceSuite) TestCreatePurchaseOrderUnknownSupplier() {
	coffee := s.seedProduct("Coffee", 12, 5)

	_, err := s.service.CreatePurchaseOrder(s.GetContext(), dto.CreatePurchaseOrderRequest{
		SupplierID: "supl_missing",
		LineItems: []*dto.PurchaseOrderLineRequest{
			{ProductID: coffee.ID, Quantity: 10},
		},
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PurchaseOrderServiceSuite) TestReceiveIncrementsStock() {
	sup := s.seedSupplier("Acme Beans")
	coffee := s.seedProduct("Coffee", 12, 5)

	created, err := s.service.CreatePurchaseOrder(s.GetContext(), dto.CreatePurchaseOrderRequest{
		SupplierID: sup.ID,
		LineItems: []*dto.PurchaseOrderLineRequest{
			{ProductID: coffee.ID, Quantity: 10},
		},
	})
	s.NoError(err)

	sent, err := s.service.TransitionPurchaseOrder(s.GetContext(), created.ID, dto.TransitionPurchaseOrderRequest{
		Status: types.PurchaseOrderStatusSent,
	})
	s.NoError(err)
	s.Equal(types.PurchaseOrderStatusSent, sent.POStatus)

	received, err := s.service.TransitionPurchaseOrder(s.GetContext(), created.ID, dto.TransitionPurchaseOrderRequest{
		Status: types.PurchaseOrderStatusReceived,
	})
	s.NoError(err)
	s.Equal(types.PurchaseOrderStatusReceived, received.POStatus)
	s.NotNil(received.ReceivedAt)

	restocked, err := s.GetStores().ProductRepo.Get(s.GetContext(), coffee.ID)
	s.NoError(err)
	s.Equal(15, restocked.StockQuantity)
}

func (s *PurchaseOrderServiceSuite) TestInvalidTransitionsRejected() {
	sup := s.seedSupplier("Acme Beans")
	coffee := s.seedProduct("Coffee", 12, 5)

	created, err := s.service.CreatePurchaseOrder(s.GetContext(), dto.CreatePurchaseOrderRequest{
		SupplierID: sup.ID,
		LineItems: []*dto.PurchaseOrderLineRequest{
			{ProductID: coffee.ID, Quantity: 10},
		},
	})
	s.NoError(err)

	// Draft cannot jump straight to received.
	_, err = s.service.TransitionPurchaseOrder(s.GetContext(), created.ID, dto.TransitionPurchaseOrderRequest{
		Status: types.PurchaseOrderStatusReceived,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// Stock was not touched by the failed transition.
	unchanged, err := s.GetStores().ProductRepo.Get(s.GetContext(), coffee.ID)
	s.NoError(err)
	s.Equal(5, unchanged.StockQuantity)
}

func (s *PurchaseOrderServiceSuite) TestTerminalOrdersAreFrozen() {
	sup := s.seedSupplier("Acme Beans")
	coffee := s.seedProduct("Coffee", 12, 5)

	created, err := s.service.CreatePurchaseOrder(s.GetContext(), dto.CreatePurchaseOrderRequest{
		SupplierID: sup.ID,
		LineItems: []*dto.PurchaseOrderLineRequest{
			{ProductID: coffee.ID, Quantity: 10},
		},
	})
	s.NoError(err)

	_, err = s.service.TransitionPurchaseOrder(s.GetContext(), created.ID, dto.TransitionPurchaseOrderRequest{
		Status: types.PurchaseOrderStatusCancelled,
	})
	s.NoError(err)

	_, err = s.service.TransitionPurchaseOrder(s.GetContext(), created.ID, dto.TransitionPurchaseOrderRequest{
		Status: types.PurchaseOrderStatusSent,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PurchaseOrderServiceSuite) TestListPurchaseOrdersByStatus() {
	sup := s.seedSupplier("Acme Beans")
	coffee := s.seedProduct("Coffee", 12, 5)

	for i := 0; i < 3; i++ {
		_, err := s.service.CreatePurchaseOrder(s.GetContext(), dto.CreatePurchaseOrderRequest{
			SupplierID: sup.ID,
			LineItems: []*dto.PurchaseOrderLineRequest{
				{ProductID: coffee.ID, Quantity: 1},
			},
		})
		s.NoError(err)
	}

	resp, err := s.service.ListPurchaseOrders(s.GetContext(), &types.PurchaseOrderFilter{
		PurchaseOrderStatus: types.PurchaseOrderStatusDraft,
	})
	s.NoError(err)
	s.Equal(3, resp.Total)

	resp, err = s.service.ListPurchaseOrders(s.GetContext(), &types.PurchaseOrderFilter{
		PurchaseOrderStatus: types.PurchaseOrderStatusSent,
	})
	s.NoError(err)
	s.Zero(resp.Total)
}
