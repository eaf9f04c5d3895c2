package service

import (
	"context"

	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/types"
)

type AdminService interface {
	// ListEntities enumerates the entities the admin browser may inspect
	ListEntities(ctx context.Context) (*dto.ListEntitiesResponse, error)
	// BrowseEntity returns one page of raw records for an allowlisted
	// entity, scoped to the caller's tenant.
	BrowseEntity(ctx context.Context, entity string, filter *types.QueryFilter) (*dto.BrowseEntityResponse, error)
}

type adminService struct {
	ServiceParams
}

func NewAdminService(params ServiceParams) AdminService {
	return &adminService{ServiceParams: params}
}

func (s *adminService) ListEntities(ctx context.Context) (*dto.ListEntitiesResponse, error) {
	return &dto.ListEntitiesResponse{Items: s.AdminRepo.Entities()}, nil
}

func (s *adminService) BrowseEntity(ctx context.Context, entity string, filter *types.QueryFilter) (*dto.BrowseEntityResponse, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	total, err := s.AdminRepo.Count(ctx, entity)
	if err != nil {
		return nil, err
	}

	records, err := s.AdminRepo.Records(ctx, entity, filter.GetLimit(), filter.GetOffset())
	if err != nil {
		return nil, err
	}

	return &dto.BrowseEntityResponse{
		Entity:  entity,
		Total:   total,
		Limit:   filter.GetLimit(),
		Offset:  filter.GetOffset(),
		Records: records,
	}, nil
}
