package types

import (
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/samber/lo"
)

// CampaignStatus tracks the lifecycle of a messaging campaign.
// draft -> scheduled -> processing -> completed | failed
type CampaignStatus string

const (
	CampaignStatusDraft      CampaignStatus = "draft"
	CampaignStatusScheduled  CampaignStatus = "scheduled"
	CampaignStatusProcessing CampaignStatus = "processing"
	CampaignStatusCompleted  CampaignStatus = "completed"
	CampaignStatusFailed     CampaignStatus = "failed"
)

func (s CampaignStatus) String() string {
	return string(s)
}

func (s CampaignStatus) Validate() error {
	allowed := []CampaignStatus{
		CampaignStatusDraft,
		CampaignStatusScheduled,
		CampaignStatusProcessing,
		CampaignStatusCompleted,
		CampaignStatusFailed,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid campaign status").
			WithHint("Invalid campaign status").
			WithReportableDetails(map[string]any{
				"status":  s,
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// MessageStatus tracks an individual outbound message.
type MessageStatus string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusSent    MessageStatus = "sent"
	MessageStatusFailed  MessageStatus = "failed"
)

func (s MessageStatus) String() string {
	return string(s)
}

// CampaignFilter defines filters for listing campaigns
type CampaignFilter struct {
	*QueryFilter
	*TimeRangeFilter
	CampaignStatus CampaignStatus `json:"campaign_status,omitempty" form:"campaign_status"`
}

func (f *CampaignFilter) GetLimit() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *CampaignFilter) GetOffset() int {
	if f == nil || f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}
