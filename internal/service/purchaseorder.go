package service

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/purchaseorder"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

type PurchaseOrderService interface {
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	GetPurchaseOrder(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error)
	ListPurchaseOrders(ctx context.Context, filter *types.PurchaseOrderFilter) (*dto.ListPurchaseOrdersResponse, error)
	// TransitionPurchaseOrder moves the order through draft -> sent ->
	// received | cancelled. Receiving increments stock for every line in
	// the same transaction.
	TransitionPurchaseOrder(ctx context.Context, id string, req dto.TransitionPurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
}

type purchaseOrderService struct {
	ServiceParams
}

func NewPurchaseOrderService(params ServiceParams) PurchaseOrderService {
	return &purchaseOrderService{ServiceParams: params}
}

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.SupplierRepo.Get(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	po := purchaseorder.New(ctx)
	po.SupplierID = req.SupplierID
	po.ExpectedAt = req.ExpectedAt
	po.Notes = req.Notes

	for _, lineReq := range req.LineItems {
		product, err := s.ProductRepo.Get(ctx, lineReq.ProductID)
		if err != nil {
			return nil, err
		}

		li := purchaseorder.NewLineItem(ctx, po.ID)
		li.ProductID = product.ID
		li.Description = lineReq.Description
		if li.Description == "" {
			li.Description = product.Name
		}
		li.Quantity = lineReq.Quantity
		li.UnitCost = lineReq.UnitCost
		if li.UnitCost.IsZero() {
			li.UnitCost = product.CostPrice
		}
		po.LineItems = append(po.LineItems, li)
	}
	po.ComputeTotal()

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		return s.PurchaseOrderRepo.Create(ctx, po)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created purchase order",
		"purchase_order_id", po.ID,
		"number", po.Number,
		"supplier_id", po.SupplierID,
		"total_amount", po.TotalAmount)
	return &dto.PurchaseOrderResponse{PurchaseOrder: po}, nil
}

func (s *purchaseOrderService) GetPurchaseOrder(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := s.PurchaseOrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PurchaseOrderResponse{PurchaseOrder: po}, nil
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, filter *types.PurchaseOrderFilter) (*dto.ListPurchaseOrdersResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	orders, err := s.PurchaseOrderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListPurchaseOrdersResponse{
		Items: make([]*dto.PurchaseOrderResponse, len(orders)),
		Total: len(orders),
	}
	for i, po := range orders {
		resp.Items[i] = &dto.PurchaseOrderResponse{PurchaseOrder: po}
	}
	return resp, nil
}

func (s *purchaseOrderService) TransitionPurchaseOrder(ctx context.Context, id string, req dto.TransitionPurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	po, err := s.PurchaseOrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !po.CanTransitionTo(req.Status) {
		return nil, ierr.NewError("invalid purchase order transition").
			WithHintf("A %s order cannot move to %s", po.POStatus, req.Status).
			WithReportableDetails(map[string]any{
				"purchase_order_id": po.ID,
				"from":              po.POStatus,
				"to":                req.Status,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		po.POStatus = req.Status
		if req.Status == types.PurchaseOrderStatusReceived {
			now := time.Now().UTC()
			po.ReceivedAt = &now
			for _, li := range po.LineItems {
				if err := s.ProductRepo.AdjustStock(ctx, li.ProductID, li.Quantity); err != nil {
					return err
				}
			}
		}
		return s.PurchaseOrderRepo.Update(ctx, po)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("transitioned purchase order",
		"purchase_order_id", po.ID,
		"po_status", po.POStatus)
	return &dto.PurchaseOrderResponse{PurchaseOrder: po}, nil
}
