package testutil

import (
	"context"
	"sync"

	"github.com/vendrahq/vendra/internal/domain/admin"
	ierr "github.com/vendrahq/vendra/internal/errors"
)

// InMemoryAdminStore implements admin.Repository with seedable records
type InMemoryAdminStore struct {
	mu       sync.RWMutex
	entities []admin.EntityInfo
	records  map[string][]map[string]any
}

// NewInMemoryAdminStore creates a new in-memory admin store
func NewInMemoryAdminStore() *InMemoryAdminStore {
	return &InMemoryAdminStore{
		entities: []admin.EntityInfo{
			{Name: "campaigns", Table: "campaigns"},
			{Name: "customers", Table: "customers"},
			{Name: "inventory_counts", Table: "inventory_counts"},
			{Name: "plans", Table: "plans"},
			{Name: "products", Table: "products"},
			{Name: "purchase_orders", Table: "purchase_orders"},
			{Name: "sales", Table: "sales"},
			{Name: "subscriptions", Table: "subscriptions"},
			{Name: "suppliers", Table: "suppliers"},
		},
		records: make(map[string][]map[string]any),
	}
}

// SeedRecords registers raw records for an entity
func (s *InMemoryAdminStore) SeedRecords(entity string, records []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[entity] = records
}

func (s *InMemoryAdminStore) Entities() []admin.EntityInfo {
	return s.entities
}

func (s *InMemoryAdminStore) Count(ctx context.Context, entity string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isKnown(entity) {
		return 0, ierr.NewError("unknown entity").
			WithHint("The requested entity is not browsable").
			Mark(ierr.ErrNotFound)
	}
	return len(s.records[entity]), nil
}

func (s *InMemoryAdminStore) Records(ctx context.Context, entity string, limit, offset int) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isKnown(entity) {
		return nil, ierr.NewError("unknown entity").
			WithHint("The requested entity is not browsable").
			Mark(ierr.ErrNotFound)
	}

	records := s.records[entity]
	if offset >= len(records) {
		return []map[string]any{}, nil
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end], nil
}

func (s *InMemoryAdminStore) isKnown(entity string) bool {
	for _, e := range s.entities {
		if e.Name == entity {
			return true
		}
	}
	return false
}

// Clear clears the seeded records
func (s *InMemoryAdminStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string][]map[string]any)
}
