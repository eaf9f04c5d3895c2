package testutil

import (
	"context"

	"github.com/vendrahq/vendra/internal/domain/inventorycount"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

// InMemoryInventoryCountStore implements inventorycount.Repository
type InMemoryInventoryCountStore struct {
	*InMemoryStore[*inventorycount.InventoryCount]
}

// NewInMemoryInventoryCountStore creates a new in-memory count store
func NewInMemoryInventoryCountStore() *InMemoryInventoryCountStore {
	return &InMemoryInventoryCountStore{
		InMemoryStore: NewInMemoryStore[*inventorycount.InventoryCount](),
	}
}

func inventoryCountFilterFn(ctx context.Context, c *inventorycount.InventoryCount, filter interface{}) bool {
	if c == nil {
		return false
	}
	if !matchesTenant(ctx, c.TenantID) {
		return false
	}

	f, ok := filter.(*types.InventoryCountFilter)
	if !ok {
		return true
	}

	if f.QueryFilter != nil && f.QueryFilter.Status != nil && c.Status != *f.QueryFilter.Status {
		return false
	}
	if f.CountStatus != "" && c.CountStatus != f.CountStatus {
		return false
	}

	return true
}

func inventoryCountSortFn(i, j *inventorycount.InventoryCount) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryInventoryCountStore) Create(ctx context.Context, c *inventorycount.InventoryCount) error {
	if c == nil {
		return ierr.NewError("inventory count cannot be nil").
			WithHint("Inventory count cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryInventoryCountStore) Get(ctx context.Context, id string) (*inventorycount.InventoryCount, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryInventoryCountStore) List(ctx context.Context, filter *types.InventoryCountFilter) ([]*inventorycount.InventoryCount, error) {
	return s.InMemoryStore.List(ctx, filter, inventoryCountFilterFn, inventoryCountSortFn)
}

func (s *InMemoryInventoryCountStore) Update(ctx context.Context, c *inventorycount.InventoryCount) error {
	if c == nil {
		return ierr.NewError("inventory count cannot be nil").
			WithHint("Inventory count cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

func (s *InMemoryInventoryCountStore) UpdateLine(ctx context.Context, line *inventorycount.Line) error {
	if line == nil {
		return ierr.NewError("count line cannot be nil").
			WithHint("Count line cannot be nil").
			Mark(ierr.ErrValidation)
	}

	count, err := s.InMemoryStore.Get(ctx, line.InventoryCountID)
	if err != nil {
		return err
	}

	for i, existing := range count.Lines {
		if existing.ID == line.ID {
			count.Lines[i] = line
			return s.InMemoryStore.Update(ctx, count.ID, count)
		}
	}

	return ierr.NewError("count line not found").
		WithHint("The requested count line does not exist").
		Mark(ierr.ErrNotFound)
}

// Clear clears the inventory count store
func (s *InMemoryInventoryCountStore) Clear() {
	s.InMemoryStore.Clear()
}
