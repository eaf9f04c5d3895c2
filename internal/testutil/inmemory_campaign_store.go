package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vendrahq/vendra/internal/domain/campaign"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

// InMemoryCampaignStore implements campaign.Repository
type InMemoryCampaignStore struct {
	*InMemoryStore[*campaign.Campaign]
}

// NewInMemoryCampaignStore creates a new in-memory campaign store
func NewInMemoryCampaignStore() *InMemoryCampaignStore {
	return &InMemoryCampaignStore{
		InMemoryStore: NewInMemoryStore[*campaign.Campaign](),
	}
}

func campaignFilterFn(ctx context.Context, c *campaign.Campaign, filter interface{}) bool {
	if c == nil {
		return false
	}
	if !matchesTenant(ctx, c.TenantID) {
		return false
	}

	f, ok := filter.(*types.CampaignFilter)
	if !ok {
		return true
	}

	if f.QueryFilter != nil && f.QueryFilter.Status != nil && c.Status != *f.QueryFilter.Status {
		return false
	}
	if f.CampaignStatus != "" && c.CampaignStatus != f.CampaignStatus {
		return false
	}

	return true
}

func campaignSortFn(i, j *campaign.Campaign) bool {
	if i == nil || j == nil {
		return false
	}
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryCampaignStore) Create(ctx context.Context, c *campaign.Campaign) error {
	if c == nil {
		return ierr.NewError("campaign cannot be nil").
			WithHint("Campaign cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryCampaignStore) Get(ctx context.Context, id string) (*campaign.Campaign, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryCampaignStore) List(ctx context.Context, filter *types.CampaignFilter) ([]*campaign.Campaign, error) {
	return s.InMemoryStore.List(ctx, filter, campaignFilterFn, campaignSortFn)
}

func (s *InMemoryCampaignStore) Update(ctx context.Context, c *campaign.Campaign) error {
	if c == nil {
		return ierr.NewError("campaign cannot be nil").
			WithHint("Campaign cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

// ListDue returns due campaigns across all tenants, mirroring the
// cross-tenant cron query.
func (s *InMemoryCampaignStore) ListDue(ctx context.Context, now time.Time) ([]*campaign.Campaign, error) {
	all, err := s.InMemoryStore.List(context.Background(), nil, nil, campaignSortFn)
	if err != nil {
		return nil, err
	}

	var result []*campaign.Campaign
	for _, c := range all {
		if c.Status == types.StatusPublished && c.IsDue(now) {
			result = append(result, c)
		}
	}
	return result, nil
}

// Clear clears the campaign store
func (s *InMemoryCampaignStore) Clear() {
	s.InMemoryStore.Clear()
}

// InMemoryMessageStore implements campaign.MessageRepository
type InMemoryMessageStore struct {
	mu       sync.RWMutex
	messages map[string]*campaign.Message
}

// NewInMemoryMessageStore creates a new in-memory message store
func NewInMemoryMessageStore() *InMemoryMessageStore {
	return &InMemoryMessageStore{
		messages: make(map[string]*campaign.Message),
	}
}

func (s *InMemoryMessageStore) CreateBulk(ctx context.Context, messages []*campaign.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, msg := range messages {
		if msg == nil {
			return ierr.NewError("message cannot be nil").
				WithHint("Message cannot be nil").
				Mark(ierr.ErrValidation)
		}
		s.messages[msg.ID] = msg
	}
	return nil
}

func (s *InMemoryMessageStore) ListByCampaign(ctx context.Context, campaignID string) ([]*campaign.Message, error) {
	return s.listByCampaign(campaignID, false)
}

func (s *InMemoryMessageStore) ListPendingByCampaign(ctx context.Context, campaignID string) ([]*campaign.Message, error) {
	return s.listByCampaign(campaignID, true)
}

func (s *InMemoryMessageStore) listByCampaign(campaignID string, pendingOnly bool) ([]*campaign.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*campaign.Message
	for _, msg := range s.messages {
		if msg.CampaignID != campaignID {
			continue
		}
		if pendingOnly && msg.MessageStatus != types.MessageStatusPending {
			continue
		}
		result = append(result, msg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *InMemoryMessageStore) Update(ctx context.Context, msg *campaign.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg == nil {
		return ierr.NewError("message cannot be nil").
			WithHint("Message cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if _, exists := s.messages[msg.ID]; !exists {
		return ierr.NewError("message not found").
			WithHint("The requested message does not exist").
			Mark(ierr.ErrNotFound)
	}
	s.messages[msg.ID] = msg
	return nil
}

func (s *InMemoryMessageStore) Stats(ctx context.Context, campaignID string) (*campaign.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &campaign.Stats{}
	for _, msg := range s.messages {
		if msg.CampaignID != campaignID {
			continue
		}
		stats.Total++
		switch msg.MessageStatus {
		case types.MessageStatusPending:
			stats.Pending++
		case types.MessageStatusSent:
			stats.Sent++
		case types.MessageStatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

// Clear clears the message store
func (s *InMemoryMessageStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make(map[string]*campaign.Message)
}
