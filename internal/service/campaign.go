package service

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/campaign"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/types"
)

const maxSendAttempts = 3

type CampaignService interface {
	CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	GetCampaign(ctx context.Context, id string) (*dto.CampaignResponse, error)
	ListCampaigns(ctx context.Context, filter *types.CampaignFilter) (*dto.ListCampaignsResponse, error)
	// ScheduleCampaign materializes one pending message per audience
	// customer and queues the campaign for the dispatch pass.
	ScheduleCampaign(ctx context.Context, id string, req dto.ScheduleCampaignRequest) (*dto.CampaignResponse, error)
	ListMessages(ctx context.Context, campaignID string) (*dto.ListMessagesResponse, error)
	// ProcessDueCampaigns dispatches every due campaign's pending messages.
	// Called from the cron endpoint; runs across tenants.
	ProcessDueCampaigns(ctx context.Context) (int, error)
}

type campaignService struct {
	ServiceParams
}

func NewCampaignService(params ServiceParams) CampaignService {
	return &campaignService{ServiceParams: params}
}

func (s *campaignService) CreateCampaign(ctx context.Context, req dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToCampaign(ctx)
	if err := s.CampaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("created campaign", "campaign_id", c.ID, "name", c.Name)
	return &dto.CampaignResponse{Campaign: c}, nil
}

func (s *campaignService) GetCampaign(ctx context.Context, id string) (*dto.CampaignResponse, error) {
	c, err := s.CampaignRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.MessageRepo.Stats(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &dto.CampaignResponse{Campaign: c, Stats: stats}, nil
}

func (s *campaignService) ListCampaigns(ctx context.Context, filter *types.CampaignFilter) (*dto.ListCampaignsResponse, error) {
	campaigns, err := s.CampaignRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListCampaignsResponse{
		Items: make([]*dto.CampaignResponse, len(campaigns)),
		Total: len(campaigns),
	}
	for i, c := range campaigns {
		resp.Items[i] = &dto.CampaignResponse{Campaign: c}
	}
	return resp, nil
}

func (s *campaignService) ScheduleCampaign(ctx context.Context, id string, req dto.ScheduleCampaignRequest) (*dto.CampaignResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.CampaignRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.CampaignStatus != types.CampaignStatusDraft {
		return nil, ierr.NewError("campaign not in draft").
			WithHint("Only draft campaigns can be scheduled").
			WithReportableDetails(map[string]any{
				"campaign_id":     c.ID,
				"campaign_status": c.CampaignStatus,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	audience, err := s.CustomerRepo.List(ctx, &types.CustomerFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
		Tag:         c.AudienceTag,
	})
	if err != nil {
		return nil, err
	}

	messages := make([]*campaign.Message, 0, len(audience))
	for _, recipient := range audience {
		if recipient.Phone == "" {
			s.Logger.Warnw("skipping audience customer without phone",
				"campaign_id", c.ID,
				"customer_id", recipient.ID)
			continue
		}
		msg := campaign.NewMessage(ctx, c.ID)
		msg.CustomerID = recipient.ID
		msg.Phone = recipient.Phone
		msg.Body = c.RenderTemplate(recipient.Name)
		messages = append(messages, msg)
	}

	if len(messages) == 0 {
		return nil, ierr.NewError("campaign has no reachable audience").
			WithHint("No customers with a phone number match the audience tag").
			Mark(ierr.ErrValidation)
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.MessageRepo.CreateBulk(ctx, messages); err != nil {
			return err
		}
		scheduledAt := req.ScheduledAt.UTC()
		c.ScheduledAt = &scheduledAt
		c.CampaignStatus = types.CampaignStatusScheduled
		return s.CampaignRepo.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("scheduled campaign",
		"campaign_id", c.ID,
		"scheduled_at", c.ScheduledAt,
		"messages", len(messages))
	return &dto.CampaignResponse{Campaign: c}, nil
}

func (s *campaignService) ListMessages(ctx context.Context, campaignID string) (*dto.ListMessagesResponse, error) {
	if _, err := s.CampaignRepo.Get(ctx, campaignID); err != nil {
		return nil, err
	}

	messages, err := s.MessageRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListMessagesResponse{
		Items: make([]*dto.MessageResponse, len(messages)),
		Total: len(messages),
	}
	for i, m := range messages {
		resp.Items[i] = &dto.MessageResponse{Message: m}
	}
	return resp, nil
}

func (s *campaignService) ProcessDueCampaigns(ctx context.Context) (int, error) {
	due, err := s.CampaignRepo.ListDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, c := range due {
		// ListDue crosses tenants; scope the rest of the work to the
		// campaign's owner.
		campaignCtx := types.SetTenantID(ctx, c.TenantID)
		if err := s.dispatchCampaign(campaignCtx, c); err != nil {
			s.Logger.Errorw("failed to dispatch campaign",
				"error", err,
				"campaign_id", c.ID)
			continue
		}
		processed++
	}
	return processed, nil
}

func (s *campaignService) dispatchCampaign(ctx context.Context, c *campaign.Campaign) error {
	c.CampaignStatus = types.CampaignStatusProcessing
	if err := s.CampaignRepo.Update(ctx, c); err != nil {
		return err
	}

	pending, err := s.MessageRepo.ListPendingByCampaign(ctx, c.ID)
	if err != nil {
		return err
	}

	failures := 0
	for _, msg := range pending {
		if err := s.sendWithRetry(ctx, msg); err != nil {
			failures++
			msg.MessageStatus = types.MessageStatusFailed
			msg.FailureReason = err.Error()
		} else {
			now := time.Now().UTC()
			msg.MessageStatus = types.MessageStatusSent
			msg.SentAt = &now
		}
		if err := s.MessageRepo.Update(ctx, msg); err != nil {
			return err
		}
	}

	if failures == len(pending) && len(pending) > 0 {
		c.CampaignStatus = types.CampaignStatusFailed
	} else {
		c.CampaignStatus = types.CampaignStatusCompleted
	}
	if err := s.CampaignRepo.Update(ctx, c); err != nil {
		return err
	}

	s.Logger.Infow("dispatched campaign",
		"campaign_id", c.ID,
		"messages", len(pending),
		"failures", failures,
		"campaign_status", c.CampaignStatus)
	return nil
}

func (s *campaignService) sendWithRetry(ctx context.Context, msg *campaign.Message) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxSendAttempts-1),
		ctx,
	)
	return backoff.Retry(func() error {
		msg.Attempts++
		return s.MessageSender.Send(ctx, msg)
	}, policy)
}
