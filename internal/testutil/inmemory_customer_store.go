package testutil

import (
	"context"
	"strings"

	"github.com/vendrahq/vendra/internal/domain/customer"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	*InMemoryStore[*customer.Customer]
}

// NewInMemoryCustomerStore creates a new in-memory customer store
func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{
		InMemoryStore: NewInMemoryStore[*customer.Customer](),
	}
}

func customerFilterFn(ctx context.Context, c *customer.Customer, filter interface{}) bool {
	if c == nil {
		return false
	}
	if !matchesTenant(ctx, c.TenantID) {
		return false
	}

	f, ok := filter.(*types.CustomerFilter)
	if !ok {
		return true
	}

	if f.QueryFilter != nil && f.QueryFilter.Status != nil && c.Status != *f.QueryFilter.Status {
		return false
	}
	if f.Tag != "" && c.Tag != f.Tag {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) &&
			!strings.Contains(c.Phone, f.Search) {
			return false
		}
	}

	return true
}

func customerSortFn(i, j *customer.Customer) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryCustomerStore) Create(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return ierr.NewError("customer cannot be nil").
			WithHint("Customer cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryCustomerStore) Get(ctx context.Context, id string) (*customer.Customer, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryCustomerStore) List(ctx context.Context, filter *types.CustomerFilter) ([]*customer.Customer, error) {
	return s.InMemoryStore.List(ctx, filter, customerFilterFn, customerSortFn)
}

func (s *InMemoryCustomerStore) Update(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return ierr.NewError("customer cannot be nil").
			WithHint("Customer cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

func (s *InMemoryCustomerStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// Clear clears the customer store
func (s *InMemoryCustomerStore) Clear() {
	s.InMemoryStore.Clear()
}
