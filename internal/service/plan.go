package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/cache"
	"github.com/vendrahq/vendra/internal/domain/plan"
	"github.com/vendrahq/vendra/internal/types"
)

const planCacheExpiry = 5 * time.Minute

type PlanService interface {
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error)
	GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error)
	ListPlans(ctx context.Context, filter *types.PlanFilter) (*dto.ListPlansResponse, error)
	UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, id string) error
}

type planService struct {
	ServiceParams
}

func NewPlanService(params ServiceParams) PlanService {
	return &planService{ServiceParams: params}
}

func (s *planService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToPlan(ctx)
	if err := s.PlanRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created plan", "plan_id", p.ID, "name", p.Name)
	return &dto.PlanResponse{Plan: p}, nil
}

func (s *planService) GetPlan(ctx context.Context, id string) (*dto.PlanResponse, error) {
	key := cache.GenerateKey(cache.PrefixPlan, types.GetTenantID(ctx), id)
	if cached, found := s.Cache.Get(ctx, key); found {
		if p, ok := cached.(*plan.Plan); ok {
			return &dto.PlanResponse{Plan: p}, nil
		}
	}

	p, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, p, planCacheExpiry)
	return &dto.PlanResponse{Plan: p}, nil
}

func (s *planService) ListPlans(ctx context.Context, filter *types.PlanFilter) (*dto.ListPlansResponse, error) {
	plans, err := s.PlanRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.PlanRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListPlansResponse{
		Items: make([]*dto.PlanResponse, len(plans)),
		Total: total,
	}
	for i, p := range plans {
		resp.Items[i] = &dto.PlanResponse{Plan: p}
	}
	return resp, nil
}

func (s *planService) UpdatePlan(ctx context.Context, id string, req dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PlanRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.LookupKey != nil {
		p.LookupKey = *req.LookupKey
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.PriceQuarterly != nil {
		p.PriceQuarterly = decimal.NullDecimal{Decimal: *req.PriceQuarterly, Valid: true}
	}
	if req.PriceBiannual != nil {
		p.PriceBiannual = decimal.NullDecimal{Decimal: *req.PriceBiannual, Valid: true}
	}
	if req.PriceAnnual != nil {
		p.PriceAnnual = decimal.NullDecimal{Decimal: *req.PriceAnnual, Valid: true}
	}

	if err := s.PlanRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixPlan, types.GetTenantID(ctx), id))
	return &dto.PlanResponse{Plan: p}, nil
}

func (s *planService) DeletePlan(ctx context.Context, id string) error {
	if _, err := s.PlanRepo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.PlanRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Cache.Delete(ctx, cache.GenerateKey(cache.PrefixPlan, types.GetTenantID(ctx), id))
	s.Logger.Infow("deleted plan", "plan_id", id)
	return nil
}
