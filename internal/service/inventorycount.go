package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/inventorycount"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

type InventoryCountService interface {
	// OpenCount starts a session, snapshotting expected quantities for the
	// requested products (or the whole catalog when none are named).
	OpenCount(ctx context.Context, req dto.OpenInventoryCountRequest) (*dto.InventoryCountResponse, error)
	GetCount(ctx context.Context, id string) (*dto.InventoryCountResponse, error)
	ListCounts(ctx context.Context, filter *types.InventoryCountFilter) (*dto.ListInventoryCountsResponse, error)
	// RecordLine records a counted quantity on an open session
	RecordLine(ctx context.Context, id string, req dto.RecordCountLineRequest) (*dto.InventoryCountResponse, error)
	// CloseCount finishes the session and optionally writes each line's
	// variance back to product stock.
	CloseCount(ctx context.Context, id string, req dto.CloseInventoryCountRequest) (*dto.InventoryCountResponse, error)
	// AbandonCount discards an open session without touching stock
	AbandonCount(ctx context.Context, id string) (*dto.InventoryCountResponse, error)
}

type inventoryCountService struct {
	ServiceParams
}

func NewInventoryCountService(params ServiceParams) InventoryCountService {
	return &inventoryCountService{ServiceParams: params}
}

func (s *inventoryCountService) OpenCount(ctx context.Context, req dto.OpenInventoryCountRequest) (*dto.InventoryCountResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	count := inventorycount.New(ctx)
	count.Notes = req.Notes

	if len(req.ProductIDs) > 0 {
		for _, productID := range req.ProductIDs {
			product, err := s.ProductRepo.Get(ctx, productID)
			if err != nil {
				return nil, err
			}
			line := inventorycount.NewLine(ctx, count.ID)
			line.ProductID = product.ID
			line.ExpectedQuantity = product.StockQuantity
			count.Lines = append(count.Lines, line)
		}
	} else {
		products, err := s.ProductRepo.List(ctx, &types.ProductFilter{QueryFilter: types.NewNoLimitQueryFilter()})
		if err != nil {
			return nil, err
		}
		for _, product := range products {
			line := inventorycount.NewLine(ctx, count.ID)
			line.ProductID = product.ID
			line.ExpectedQuantity = product.StockQuantity
			count.Lines = append(count.Lines, line)
		}
	}

	if len(count.Lines) == 0 {
		return nil, ierr.NewError("nothing to count").
			WithHint("There are no products to include in the count").
			Mark(ierr.ErrValidation)
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		return s.InventoryCountRepo.Create(ctx, count)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("opened inventory count",
		"inventory_count_id", count.ID,
		"lines", len(count.Lines))
	return dto.ToInventoryCountResponse(count), nil
}

func (s *inventoryCountService) GetCount(ctx context.Context, id string) (*dto.InventoryCountResponse, error) {
	count, err := s.InventoryCountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToInventoryCountResponse(count), nil
}

func (s *inventoryCountService) ListCounts(ctx context.Context, filter *types.InventoryCountFilter) (*dto.ListInventoryCountsResponse, error) {
	counts, err := s.InventoryCountRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListInventoryCountsResponse{
		Items: make([]*dto.InventoryCountResponse, len(counts)),
		Total: len(counts),
	}
	for i, count := range counts {
		resp.Items[i] = dto.ToInventoryCountResponse(count)
	}
	return resp, nil
}

func (s *inventoryCountService) RecordLine(ctx context.Context, id string, req dto.RecordCountLineRequest) (*dto.InventoryCountResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	count, err := s.InventoryCountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if count.CountStatus != types.InventoryCountStatusOpen {
		return nil, ierr.NewError("count session not open").
			WithHint("Counts can only be recorded on an open session").
			Mark(ierr.ErrInvalidOperation)
	}

	line, found := lo.Find(count.Lines, func(l *inventorycount.Line) bool {
		return l.ID == req.LineID
	})
	if !found {
		return nil, ierr.NewError("count line not found").
			WithHintf("Line %s does not belong to this count", req.LineID).
			WithReportableDetails(map[string]any{"line_id": req.LineID}).
			Mark(ierr.ErrNotFound)
	}

	line.CountedQuantity = lo.ToPtr(req.CountedQuantity)
	if err := s.InventoryCountRepo.UpdateLine(ctx, line); err != nil {
		return nil, err
	}
	return dto.ToInventoryCountResponse(count), nil
}

func (s *inventoryCountService) CloseCount(ctx context.Context, id string, req dto.CloseInventoryCountRequest) (*dto.InventoryCountResponse, error) {
	count, err := s.InventoryCountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if count.CountStatus != types.InventoryCountStatusOpen {
		return nil, ierr.NewError("count session not open").
			WithHint("Only an open session can be closed").
			Mark(ierr.ErrInvalidOperation)
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if req.ApplyAdjustments {
			for _, line := range count.Lines {
				variance := line.Variance()
				if !line.IsCounted() || variance == 0 {
					continue
				}
				if err := s.ProductRepo.AdjustStock(ctx, line.ProductID, variance); err != nil {
					return err
				}
			}
			count.AdjustmentsApplied = true
		}

		now := time.Now().UTC()
		count.CountStatus = types.InventoryCountStatusClosed
		count.ClosedAt = &now
		return s.InventoryCountRepo.Update(ctx, count)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("closed inventory count",
		"inventory_count_id", count.ID,
		"adjustments_applied", count.AdjustmentsApplied)
	return dto.ToInventoryCountResponse(count), nil
}

func (s *inventoryCountService) AbandonCount(ctx context.Context, id string) (*dto.InventoryCountResponse, error) {
	count, err := s.InventoryCountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if count.CountStatus != types.InventoryCountStatusOpen {
		return nil, ierr.NewError("count session not open").
			WithHint("Only an open session can be abandoned").
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	count.CountStatus = types.InventoryCountStatusAbandoned
	count.ClosedAt = &now
	if err := s.InventoryCountRepo.Update(ctx, count); err != nil {
		return nil, err
	}

	s.Logger.Infow("abandoned inventory count", "inventory_count_id", count.ID)
	return dto.ToInventoryCountResponse(count), nil
}
