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

type PlanServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PlanService
}

func TestPlanService(t *testing.T) {
	suite.Run(t, new(PlanServiceSuite))
}

func (s *PlanServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPlanService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *PlanServiceSuite) TestCreatePlan() {
	resp, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:        "Pro",
		LookupKey:   "pro",
		Price:       decimal.NewFromInt(300),
		PriceAnnual: lo.ToPtr(decimal.NewFromInt(3000)),
	})
	s.NoError(err)
	s.Equal("Pro", resp.Name)
	s.Equal("usd", resp.Currency)
	s.True(resp.PriceAnnual.Valid)
	s.True(resp.PriceAnnual.Decimal.Equal(decimal.NewFromInt(3000)))
}

func (s *PlanServiceSuite) TestGetPlanServesFromCache() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:  "Pro",
		Price: decimal.NewFromInt(300),
	})
	s.NoError(err)

	first, err := s.service.GetPlan(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Pro", first.Name)

	// Removing the row behind the cache proves the second read is served
	// from the cache.
	s.NoError(s.GetStores().PlanRepo.Delete(s.GetContext(), created.ID))

	second, err := s.service.GetPlan(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Pro", second.Name)
}

func (s *PlanServiceSuite) TestUpdatePlanInvalidatesCache() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:  "Pro",
		Price: decimal.NewFromInt(300),
	})
	s.NoError(err)

	_, err = s.service.GetPlan(s.GetContext(), created.ID)
	s.NoError(err)

	updated, err := s.service.UpdatePlan(s.GetContext(), created.ID, dto.UpdatePlanRequest{
		Name:  lo.ToPtr("Pro Max"),
		Price: lo.ToPtr(decimal.NewFromInt(400)),
	})
	s.NoError(err)
	s.Equal("Pro Max", updated.Name)

	fresh, err := s.service.GetPlan(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Pro Max", fresh.Name)
	s.True(fresh.Price.Equal(decimal.NewFromInt(400)))
}

func (s *PlanServiceSuite) TestDeletePlan() {
	created, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
		Name:  "Pro",
		Price: decimal.NewFromInt(300),
	})
	s.NoError(err)

	s.NoError(s.service.DeletePlan(s.GetContext(), created.ID))

	_, err = s.service.GetPlan(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PlanServiceSuite) TestListPlans() {
	for _, name := range []string{"Lite", "Pro", "Max"} {
		_, err := s.service.CreatePlan(s.GetContext(), dto.CreatePlanRequest{
			Name:  name,
			Price: decimal.NewFromInt(100),
		})
		s.NoError(err)
	}

	resp, err := s.service.ListPlans(s.GetContext(), &types.PlanFilter{})
	s.NoError(err)
	s.Equal(3, resp.Total)
	s.Len(resp.Items, 3)
}
