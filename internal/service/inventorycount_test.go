package service

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/product"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/testutil"
	"github.com/vendrahq/vendra/internal/types"
)

type InventoryCountServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InventoryCountService
}

func TestInventoryCountService(t *testing.T) {
	suite.Run(t, new(InventoryCountServiceSuite))
}

func (s *InventoryCountServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInventoryCountService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *InventoryCountServiceSuite) seedProduct(name string, stock int) *product.Product {
	p := product.New(s.GetContext())
	p.Name = name
	p.SKU = "SKU-" + name
	p.StockQuantity = stock
	s.NoError(s.GetStores().ProductRepo.Create(s.GetContext(), p))
	return p
}

func (s *InventoryCountServiceSuite) TestOpenCountSnapshotsStock() {
	coffee := s.seedProduct("Coffee", 12)
	filter := s.seedProduct("Filter", 30)

	resp, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{
		ProductIDs: []string{coffee.ID, filter.ID},
	})
	s.NoError(err)
	s.Equal(types.InventoryCountStatusOpen, resp.CountStatus)
	s.Len(resp.Lines, 2)
	s.Equal(12, resp.Lines[0].ExpectedQuantity)
	s.Equal(30, resp.Lines[1].ExpectedQuantity)
	s.Nil(resp.Lines[0].CountedQuantity)
}

func (s *InventoryCountServiceSuite) TestOpenCountWholeCatalog() {
	s.seedProduct("Coffee", 12)
	s.seedProduct("Filter", 30)
	s.seedProduct("Mug", 7)

	resp, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{})
	s.NoError(err)
	s.Len(resp.Lines, 3)
}

func (s *InventoryCountServiceSuite) TestOpenCountEmptyCatalogRejected() {
	_, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InventoryCountServiceSuite) TestRecordLine() {
	coffee := s.seedProduct("Coffee", 12)

	opened, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{
		ProductIDs: []string{coffee.ID},
	})
	s.NoError(err)

	resp, err := s.service.RecordLine(s.GetContext(), opened.ID, dto.RecordCountLineRequest{
		LineID:          opened.Lines[0].ID,
		CountedQuantity: 9,
	})
	s.NoError(err)
	s.Equal(9, *resp.Lines[0].CountedQuantity)
	s.Equal(-3, resp.LineDetails[0].Variance)
}

func (s *InventoryCountServiceSuite) TestRecordLineUnknownLine() {
	coffee := s.seedProduct("Coffee", 12)

	opened, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{
		ProductIDs: []string{coffee.ID},
	})
	s.NoError(err)

	_, err = s.service.RecordLine(s.GetContext(), opened.ID, dto.RecordCountLineRequest{
		LineID:          "line_missing",
		CountedQuantity: 9,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InventoryCountServiceSuite) TestCloseCountAppliesVariance() {
	coffee := s.seedProduct("Coffee", 12)
	filter := s.seedProduct("Filter", 30)
	mug := s.seedProduct("Mug", 7)

	opened, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{
		ProductIDs: []string{coffee.ID, filter.ID, mug.ID},
	})
	s.NoError(err)

	// Coffee short by 3, filter over by 5, mug never counted.
	_, err = s.service.RecordLine(s.GetContext(), opened.ID, dto.RecordCountLineRequest{
		LineID: opened.Lines[0].ID, CountedQuantity: 9,
	})
	s.NoError(err)
	_, err = s.service.RecordLine(s.GetContext(), opened.ID, dto.RecordCountLineRequest{
		LineID: opened.Lines[1].ID, CountedQuantity: 35,
	})
	s.NoError(err)

	closed, err := s.service.CloseCount(s.GetContext(), opened.ID, dto.CloseInventoryCountRequest{
		ApplyAdjustments: true,
	})
	s.NoError(err)
	s.Equal(types.InventoryCountStatusClosed, closed.CountStatus)
	s.True(closed.AdjustmentsApplied)
	s.NotNil(closed.ClosedAt)

	adjustedCoffee, err := s.GetStores().ProductRepo.Get(s.GetContext(), coffee.ID)
	s.NoError(err)
	s.Equal(9, adjustedCoffee.StockQuantity)

	adjustedFilter, err := s.GetStores().ProductRepo.Get(s.GetContext(), filter.ID)
	s.NoError(err)
	s.Equal(35, adjustedFilter.StockQuantity)

	// Uncounted lines never move stock.
	untouchedMug, err := s.GetStores().ProductRepo.Get(s.GetContext(), mug.ID)
	s.NoError(err)
	s.Equal(7, untouchedMug.StockQuantity)
}

func (s *InventoryCountServiceSuite) TestCloseCountWithoutAdjustments() {
	coffee := s.seedProduct("Coffee", 12)

	opened, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{
		ProductIDs: []string{coffee.ID},
	})
	s.NoError(err)

	_, err = s.service.RecordLine(s.GetContext(), opened.ID, dto.RecordCountLineRequest{
		LineID: opened.Lines[0].ID, CountedQuantity: 5,
	})
	s.NoError(err)

	closed, err := s.service.CloseCount(s.GetContext(), opened.ID, dto.CloseInventoryCountRequest{})
	s.NoError(err)
	s.False(closed.AdjustmentsApplied)

	unchanged, err := s.GetStores().ProductRepo.Get(s.GetContext(), coffee.ID)
	s.NoError(err)
	s.Equal(12, unchanged.StockQuantity)
}

func (s *InventoryCountServiceSuite) TestAbandonCount() {
	coffee := s.seedProduct("Coffee", 12)

	opened, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{
		ProductIDs: []string{coffee.ID},
	})
	s.NoError(err)

	_, err = s.service.RecordLine(s.GetContext(), opened.ID, dto.RecordCountLineRequest{
		LineID: opened.Lines[0].ID, CountedQuantity: 99,
	})
	s.NoError(err)

	abandoned, err := s.service.AbandonCount(s.GetContext(), opened.ID)
	s.NoError(err)
	s.Equal(types.InventoryCountStatusAbandoned, abandoned.CountStatus)

	unchanged, err := s.GetStores().ProductRepo.Get(s.GetContext(), coffee.ID)
	s.NoError(err)
	s.Equal(12, unchanged.StockQuantity)

	// A closed or abandoned session rejects further activity.
	_, err = s.service.RecordLine(s.GetContext(), opened.ID, dto.RecordCountLineRequest{
		LineID: opened.Lines[0].ID, CountedQuantity: 1,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.CloseCount(s.GetContext(), opened.ID, dto.CloseInventoryCountRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InventoryCountServiceSuite) TestListCountsByStatus() {
	coffee := s.seedProduct("Coffee", 12)

	opened, err := s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{
		ProductIDs: []string{coffee.ID},
	})
	s.NoError(err)
	_, err = s.service.AbandonCount(s.GetContext(), opened.ID)
	s.NoError(err)

	_, err = s.service.OpenCount(s.GetContext(), dto.OpenInventoryCountRequest{
		ProductIDs: []string{coffee.ID},
	})
	s.NoError(err)

	resp, err := s.service.ListCounts(s.GetContext(), &types.InventoryCountFilter{
		CountStatus: types.InventoryCountStatusOpen,
	})
	s.NoError(err)
	s.Equal(1, resp.Total)
	s.Equal(types.InventoryCountStatusOpen, resp.Items[0].CountStatus)
}
