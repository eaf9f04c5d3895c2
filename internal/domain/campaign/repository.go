package campaign

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/types"
)

// Repository defines the interface for campaign persistence
type Repository interface {
	Create(ctx context.Context, campaign *Campaign) error
	Get(ctx context.Context, id string) (*Campaign, error)
	List(ctx context.Context, filter *types.CampaignFilter) ([]*Campaign, error)
	Update(ctx context.Context, campaign *Campaign) error
	// ListDue returns scheduled campaigns whose scheduled_at is at or
	// before now, across all tenants. Used by the cron dispatch pass.
	ListDue(ctx context.Context, now time.Time) ([]*Campaign, error)
}

// MessageRepository defines the interface for outbound message persistence
type MessageRepository interface {
	CreateBulk(ctx context.Context, messages []*Message) error
	ListByCampaign(ctx context.Context, campaignID string) ([]*Message, error)
	ListPendingByCampaign(ctx context.Context, campaignID string) ([]*Message, error)
	Update(ctx context.Context, message *Message) error
	// Stats rolls up message statuses for a campaign
	Stats(ctx context.Context, campaignID string) (*Stats, error)
}
