package service

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"github.com/vendrahq/vendra/internal/domain/admin"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/testutil"
	"github.com/vendrahq/vendra/internal/types"
)

type AdminServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AdminService
}

func TestAdminService(t *testing.T) {
	suite.Run(t, new(AdminServiceSuite))
}

func (s *AdminServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewAdminService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *AdminServiceSuite) adminStore() *testutil.InMemoryAdminStore {
	return s.GetStores().AdminRepo.(*testutil.InMemoryAdminStore)
}

func (s *AdminServiceSuite) TestListEntities() {
	resp, err := s.service.ListEntities(s.GetContext())
	s.NoError(err)
	s.NotEmpty(resp.Items)

	names := lo.Map(resp.Items, func(e admin.EntityInfo, _ int) string {
		return e.Name
	})
	s.Contains(names, "products")
	s.Contains(names, "subscriptions")
	s.NotContains(names, "secrets")
}

func (s *AdminServiceSuite) TestBrowseEntityPaginates() {
	records := make([]map[string]any, 0, 25)
	for i := 0; i < 25; i++ {
		records = append(records, map[string]any{"id": fmt.Sprintf("prod_%02d", i)})
	}
	s.adminStore().SeedRecords("products", records)

	resp, err := s.service.BrowseEntity(s.GetContext(), "products", &types.QueryFilter{
		Limit:  lo.ToPtr(10),
		Offset: lo.ToPtr(20),
	})
	s.NoError(err)
	s.Equal("products", resp.Entity)
	s.Equal(25, resp.Total)
	s.Equal(10, resp.Limit)
	s.Equal(20, resp.Offset)
	s.Len(resp.Records, 5)
	s.Equal("prod_20", resp.Records[0]["id"])
}

func (s *AdminServiceSuite) TestBrowseEntityDefaultsFilter() {
	s.adminStore().SeedRecords("plans", []map[string]any{{"id": "plan_1"}})

	resp, err := s.service.BrowseEntity(s.GetContext(), "plans", nil)
	s.NoError(err)
	s.Equal(1, resp.Total)
	s.Len(resp.Records, 1)
}

func (s *AdminServiceSuite) TestBrowseUnknownEntityRejected() {
	_, err := s.service.BrowseEntity(s.GetContext(), "secrets", nil)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
