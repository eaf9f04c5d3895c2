package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/vendrahq/vendra/internal/domain/product"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]

	// adjustMu serializes stock adjustments the way the SQL guard does
	adjustMu sync.Mutex
}

// NewInMemoryProductStore creates a new in-memory product store
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		InMemoryStore: NewInMemoryStore[*product.Product](),
	}
}

func productFilterFn(ctx context.Context, p *product.Product, filter interface{}) bool {
	if p == nil {
		return false
	}
	if !matchesTenant(ctx, p.TenantID) {
		return false
	}

	f, ok := filter.(*types.ProductFilter)
	if !ok {
		return true
	}

	if f.QueryFilter != nil && f.QueryFilter.Status != nil && p.Status != *f.QueryFilter.Status {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.SupplierID != "" && (p.SupplierID == nil || *p.SupplierID != f.SupplierID) {
		return false
	}
	if f.LowStock && !p.IsLowStock() {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) &&
			!strings.Contains(strings.ToLower(p.Barcode), search) {
			return false
		}
	}

	return true
}

func productSortFn(i, j *product.Product) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryProductStore) Create(ctx context.Context, p *product.Product) error {
	if p == nil {
		return ierr.NewError("product cannot be nil").
			WithHint("Product cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryProductStore) List(ctx context.Context, filter *types.ProductFilter) ([]*product.Product, error) {
	return s.InMemoryStore.List(ctx, filter, productFilterFn, productSortFn)
}

func (s *InMemoryProductStore) Count(ctx context.Context, filter *types.ProductFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, productFilterFn)
}

func (s *InMemoryProductStore) Update(ctx context.Context, p *product.Product) error {
	if p == nil {
		return ierr.NewError("product cannot be nil").
			WithHint("Product cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

func (s *InMemoryProductStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryProductStore) AdjustStock(ctx context.Context, id string, delta int) error {
	s.adjustMu.Lock()
	defer s.adjustMu.Unlock()

	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return err
	}

	if p.StockQuantity+delta < 0 {
		return ierr.NewError("stock adjustment rejected").
			WithHint("Stock cannot go below zero").
			WithReportableDetails(map[string]any{
				"product_id": id,
				"delta":      delta,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	p.StockQuantity += delta
	return s.InMemoryStore.Update(ctx, p.ID, p)
}

// Clear clears the product store
func (s *InMemoryProductStore) Clear() {
	s.InMemoryStore.Clear()
}
