package dto

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/campaign"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/validator"
)

// CreateCampaignRequest represents the request payload for creating a
// draft campaign. The template may reference {{name}} for personalization.
type CreateCampaignRequest struct {
	Name            string `json:"name" binding:"required" validate:"required"`
	MessageTemplate string `json:"message_template" binding:"required" validate:"required"`
	AudienceTag     string `json:"audience_tag"`
}

func (r *CreateCampaignRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCampaignRequest) ToCampaign(ctx context.Context) *campaign.Campaign {
	c := campaign.New(ctx)
	c.Name = r.Name
	c.MessageTemplate = r.MessageTemplate
	c.AudienceTag = r.AudienceTag
	return c
}

// ScheduleCampaignRequest schedules a draft campaign for dispatch
type ScheduleCampaignRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required" validate:"required"`
}

func (r *ScheduleCampaignRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.ScheduledAt.Before(time.Now().UTC().Add(-time.Minute)) {
		return ierr.NewError("scheduled time is in the past").
			WithHint("Campaigns must be scheduled for a future time").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CampaignResponse represents the campaign response structure
type CampaignResponse struct {
	*campaign.Campaign
	Stats *campaign.Stats `json:"stats,omitempty"`
}

// ListCampaignsResponse represents a campaign listing
type ListCampaignsResponse struct {
	Items []*CampaignResponse `json:"items"`
	Total int                 `json:"total"`
}

// MessageResponse represents one outbound message
type MessageResponse struct {
	*campaign.Message
}

// ListMessagesResponse represents a campaign's message listing
type ListMessagesResponse struct {
	Items []*MessageResponse `json:"items"`
	Total int                `json:"total"`
}
