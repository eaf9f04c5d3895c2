package testutil

import (
	"context"

	"github.com/vendrahq/vendra/internal/domain/purchaseorder"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

// InMemoryPurchaseOrderStore implements purchaseorder.Repository
type InMemoryPurchaseOrderStore struct {
	*InMemoryStore[*purchaseorder.PurchaseOrder]
}

// NewInMemoryPurchaseOrderStore creates a new in-memory purchase order store
func NewInMemoryPurchaseOrderStore() *InMemoryPurchaseOrderStore {
	return &InMemoryPurchaseOrderStore{
		InMemoryStore: NewInMemoryStore[*purchaseorder.PurchaseOrder](),
	}
}

func purchaseOrderFilterFn(ctx context.Context, po *purchaseorder.PurchaseOrder, filter interface{}) bool {
	if po == nil {
		return false
	}
	if !matchesTenant(ctx, po.TenantID) {
		return false
	}

	f, ok := filter.(*types.PurchaseOrderFilter)
	if !ok {
		return true
	}

	if f.QueryFilter != nil && f.QueryFilter.Status != nil && po.Status != *f.QueryFilter.Status {
		return false
	}
	if f.SupplierID != "" && po.SupplierID != f.SupplierID {
		return false
	}
	if f.PurchaseOrderStatus != "" && po.POStatus != f.PurchaseOrderStatus {
		return false
	}

	return true
}

func purchaseOrderSortFn(i, j *purchaseorder.PurchaseOrder) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryPurchaseOrderStore) Create(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	if po == nil {
		return ierr.NewError("purchase order cannot be nil").
			WithHint("Purchase order cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, po.ID, po)
}

func (s *InMemoryPurchaseOrderStore) Get(ctx context.Context, id string) (*purchaseorder.PurchaseOrder, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryPurchaseOrderStore) List(ctx context.Context, filter *types.PurchaseOrderFilter) ([]*purchaseorder.PurchaseOrder, error) {
	return s.InMemoryStore.List(ctx, filter, purchaseOrderFilterFn, purchaseOrderSortFn)
}

func (s *InMemoryPurchaseOrderStore) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	if po == nil {
		return ierr.NewError("purchase order cannot be nil").
			WithHint("Purchase order cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, po.ID, po)
}

// Clear clears the purchase order store
func (s *InMemoryPurchaseOrderStore) Clear() {
	s.InMemoryStore.Clear()
}
