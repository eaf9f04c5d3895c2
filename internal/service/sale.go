package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/sale"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

type SaleService interface {
	// CreateSale records a point-of-sale transaction and decrements stock
	// for every line in the same transaction.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id string) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, filter *types.SaleFilter) (*dto.ListSalesResponse, error)
	// VoidSale cancels a completed sale and restores the sold stock
	VoidSale(ctx context.Context, id string) (*dto.SaleResponse, error)
	// GetDailySummary aggregates the day's completed sales
	GetDailySummary(ctx context.Context, day time.Time) (*dto.DailySummaryResponse, error)
}

type saleService struct {
	ServiceParams
}

func NewSaleService(params ServiceParams) SaleService {
	return &saleService{ServiceParams: params}
}

func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.CustomerID != nil {
		if _, err := s.CustomerRepo.Get(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
	}

	sl := sale.New(ctx)
	sl.CustomerID = req.CustomerID
	sl.PaymentMethod = req.PaymentMethod
	sl.DiscountAmount = req.DiscountAmount
	sl.Notes = req.Notes

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, lineReq := range req.LineItems {
			product, err := s.ProductRepo.Get(ctx, lineReq.ProductID)
			if err != nil {
				return err
			}

			li := sale.NewLineItem(ctx, sl.ID)
			li.ProductID = product.ID
			li.Description = product.Name
			li.Quantity = lineReq.Quantity
			li.UnitPrice = product.SalePrice
			if lineReq.UnitPrice != nil {
				li.UnitPrice = *lineReq.UnitPrice
			}
			sl.LineItems = append(sl.LineItems, li)

			if err := s.ProductRepo.AdjustStock(ctx, product.ID, -lineReq.Quantity); err != nil {
				return err
			}
		}

		sl.ComputeTotals()
		return s.SaleRepo.Create(ctx, sl)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("recorded sale",
		"sale_id", sl.ID,
		"number", sl.Number,
		"payment_method", sl.PaymentMethod,
		"total_amount", sl.TotalAmount)
	return &dto.SaleResponse{Sale: sl}, nil
}

func (s *saleService) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sl, err := s.SaleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SaleResponse{Sale: sl}, nil
}

func (s *saleService) ListSales(ctx context.Context, filter *types.SaleFilter) (*dto.ListSalesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	sales, err := s.SaleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListSalesResponse{
		Items: make([]*dto.SaleResponse, len(sales)),
		Total: len(sales),
	}
	for i, sl := range sales {
		resp.Items[i] = &dto.SaleResponse{Sale: sl}
	}
	return resp, nil
}

func (s *saleService) VoidSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sl, err := s.SaleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sl.SaleStatus == types.SaleStatusVoided {
		return nil, ierr.NewError("sale already voided").
			WithHint("This sale was already voided").
			Mark(ierr.ErrInvalidOperation)
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, li := range sl.LineItems {
			if err := s.ProductRepo.AdjustStock(ctx, li.ProductID, li.Quantity); err != nil {
				return err
			}
		}
		sl.SaleStatus = types.SaleStatusVoided
		return s.SaleRepo.Update(ctx, sl)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("voided sale", "sale_id", sl.ID, "number", sl.Number)
	return &dto.SaleResponse{Sale: sl}, nil
}

func (s *saleService) GetDailySummary(ctx context.Context, day time.Time) (*dto.DailySummaryResponse, error) {
	sales, err := s.SaleRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	summary := &sale.DailySummary{
		Date:          time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		GrossAmount:   decimal.Zero,
		DiscountTotal: decimal.Zero,
		NetAmount:     decimal.Zero,
		ByMethod:      map[types.PaymentMethod]decimal.Decimal{},
	}
	for _, sl := range sales {
		summary.SaleCount++
		summary.GrossAmount = summary.GrossAmount.Add(sl.Subtotal)
		summary.DiscountTotal = summary.DiscountTotal.Add(sl.DiscountAmount)
		summary.NetAmount = summary.NetAmount.Add(sl.TotalAmount)

		current, ok := summary.ByMethod[sl.PaymentMethod]
		if !ok {
			current = decimal.Zero
		}
		summary.ByMethod[sl.PaymentMethod] = current.Add(sl.TotalAmount)
	}

	return dto.ToDailySummaryResponse(summary), nil
}
