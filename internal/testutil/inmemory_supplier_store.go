package testutil

import (
	"context"
	"strings"

	"github.com/vendrahq/vendra/internal/domain/supplier"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

// InMemorySupplierStore implements supplier.Repository
type InMemorySupplierStore struct {
	*InMemoryStore[*supplier.Supplier]
}

// NewInMemorySupplierStore creates a new in-memory supplier store
func NewInMemorySupplierStore() *InMemorySupplierStore {
	return &InMemorySupplierStore{
		InMemoryStore: NewInMemoryStore[*supplier.Supplier](),
	}
}

func supplierFilterFn(ctx context.Context, sup *supplier.Supplier, filter interface{}) bool {
	if sup == nil {
		return false
	}
	if !matchesTenant(ctx, sup.TenantID) {
		return false
	}

	f, ok := filter.(*types.SupplierFilter)
	if !ok {
		return true
	}

	if f.QueryFilter != nil && f.QueryFilter.Status != nil && sup.Status != *f.QueryFilter.Status {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(sup.Name), search) &&
			!strings.Contains(strings.ToLower(sup.DocNumber), search) {
			return false
		}
	}

	return true
}

func supplierSortFn(i, j *supplier.Supplier) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemorySupplierStore) Create(ctx context.Context, sup *supplier.Supplier) error {
	if sup == nil {
		return ierr.NewError("supplier cannot be nil").
			WithHint("Supplier cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, sup.ID, sup)
}

func (s *InMemorySupplierStore) Get(ctx context.Context, id string) (*supplier.Supplier, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemorySupplierStore) List(ctx context.Context, filter *types.SupplierFilter) ([]*supplier.Supplier, error) {
	return s.InMemoryStore.List(ctx, filter, supplierFilterFn, supplierSortFn)
}

func (s *InMemorySupplierStore) Update(ctx context.Context, sup *supplier.Supplier) error {
	if sup == nil {
		return ierr.NewError("supplier cannot be nil").
			WithHint("Supplier cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, sup.ID, sup)
}

func (s *InMemorySupplierStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// Clear clears the supplier store
func (s *InMemorySupplierStore) Clear() {
	s.InMemoryStore.Clear()
}
