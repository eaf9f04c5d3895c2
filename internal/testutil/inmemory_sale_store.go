package testutil

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/sale"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

// InMemorySaleStore implements sale.Repository
type InMemorySaleStore struct {
	*InMemoryStore[*sale.Sale]
}

// NewInMemorySaleStore creates a new in-memory sale store
func NewInMemorySaleStore() *InMemorySaleStore {
	return &InMemorySaleStore{
		InMemoryStore: NewInMemoryStore[*sale.Sale](),
	}
}

func saleFilterFn(ctx context.Context, sl *sale.Sale, filter interface{}) bool {
	if sl == nil {
		return false
	}
	if !matchesTenant(ctx, sl.TenantID) {
		return false
	}

	f, ok := filter.(*types.SaleFilter)
	if !ok {
		return true
	}

	if f.QueryFilter != nil && f.QueryFilter.Status != nil && sl.Status != *f.QueryFilter.Status {
		return false
	}
	if f.CustomerID != "" && (sl.CustomerID == nil || *sl.CustomerID != f.CustomerID) {
		return false
	}
	if f.PaymentMethod != "" && sl.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.SaleStatus != "" && sl.SaleStatus != f.SaleStatus {
		return false
	}

	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && sl.CreatedAt.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && sl.CreatedAt.After(*f.EndTime) {
			return false
		}
	}

	return true
}

func saleSortFn(i, j *sale.Sale) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemorySaleStore) Create(ctx context.Context, sl *sale.Sale) error {
	if sl == nil {
		return ierr.NewError("sale cannot be nil").
			WithHint("Sale cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, sl.ID, sl)
}

func (s *InMemorySaleStore) Get(ctx context.Context, id string) (*sale.Sale, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemorySaleStore) List(ctx context.Context, filter *types.SaleFilter) ([]*sale.Sale, error) {
	return s.InMemoryStore.List(ctx, filter, saleFilterFn, saleSortFn)
}

func (s *InMemorySaleStore) Update(ctx context.Context, sl *sale.Sale) error {
	if sl == nil {
		return ierr.NewError("sale cannot be nil").
			WithHint("Sale cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, sl.ID, sl)
}

func (s *InMemorySaleStore) ListByDay(ctx context.Context, day time.Time) ([]*sale.Sale, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	sales, err := s.InMemoryStore.List(ctx, nil, saleFilterFn, saleSortFn)
	if err != nil {
		return nil, err
	}

	var result []*sale.Sale
	for _, sl := range sales {
		if sl.SaleStatus != types.SaleStatusCompleted {
			continue
		}
		if sl.CreatedAt.Before(dayStart) || !sl.CreatedAt.Before(dayEnd) {
			continue
		}
		result = append(result, sl)
	}
	return result, nil
}

// Clear clears the sale store
func (s *InMemorySaleStore) Clear() {
	s.InMemoryStore.Clear()
}
