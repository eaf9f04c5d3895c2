package campaign

import (
	"context"
	"strings"
	"time"

	"github.com/vendrahq/vendra/internal/types"
)

// Campaign is a scheduled broadcast to a customer audience. Scheduling a
// campaign materializes one Message per matching customer; a cron pass
// dispatches messages once the campaign is due.
type Campaign struct {
	ID              string               `db:"id" json:"id"`
	Name            string               `db:"name" json:"name"`
	MessageTemplate string               `db:"message_template" json:"message_template"`
	AudienceTag     string               `db:"audience_tag" json:"audience_tag"`
	ScheduledAt     *time.Time           `db:"scheduled_at" json:"scheduled_at,omitempty"`
	CampaignStatus  types.CampaignStatus `db:"campaign_status" json:"campaign_status"`
	types.BaseModel

	Messages []*Message `db:"-" json:"messages,omitempty"`
}

// Message is one outbound message owned by a campaign
type Message struct {
	ID             string              `db:"id" json:"id"`
	CampaignID     string              `db:"campaign_id" json:"campaign_id"`
	CustomerID     string              `db:"customer_id" json:"customer_id"`
	Phone          string              `db:"phone" json:"phone"`
	Body           string              `db:"body" json:"body"`
	MessageStatus  types.MessageStatus `db:"message_status" json:"message_status"`
	FailureReason  string              `db:"failure_reason" json:"failure_reason"`
	Attempts       int                 `db:"attempts" json:"attempts"`
	SentAt         *time.Time          `db:"sent_at" json:"sent_at,omitempty"`
	types.BaseModel
}

// Stats is the per-status rollup of a campaign's messages
type Stats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

// IsDue reports whether the campaign should be dispatched at the given time
func (c *Campaign) IsDue(now time.Time) bool {
	if c.CampaignStatus != types.CampaignStatusScheduled || c.ScheduledAt == nil {
		return false
	}
	return !c.ScheduledAt.After(now)
}

// RenderTemplate substitutes {{name}} with the recipient's name
func (c *Campaign) RenderTemplate(customerName string) string {
	return strings.ReplaceAll(c.MessageTemplate, "{{name}}", customerName)
}

// New builds a campaign with defaults applied from the request context
func New(ctx context.Context) *Campaign {
	return &Campaign{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CAMPAIGN),
		CampaignStatus: types.CampaignStatusDraft,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

// NewMessage builds a message for the given campaign
func NewMessage(ctx context.Context, campaignID string) *Message {
	return &Message{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_MESSAGE),
		CampaignID:    campaignID,
		MessageStatus: types.MessageStatusPending,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}
