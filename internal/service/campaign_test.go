package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/customer"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/testutil"
	"github.com/vendrahq/vendra/internal/types"
)

type CampaignServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CampaignService
}

func TestCampaignService(t *testing.T) {
	suite.Run(t, new(CampaignServiceSuite))
}

func (s *CampaignServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCampaignService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *CampaignServiceSuite) seedCustomer(name, phone, tag string) *customer.Customer {
	c := customer.New(s.GetContext())
	c.Name = name
	c.Phone = phone
	c.Tag = tag
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), c))
	return c
}

func (s *CampaignServiceSuite) createCampaign(name, template, tag string) *dto.CampaignResponse {
	resp, err := s.service.CreateCampaign(s.GetContext(), dto.CreateCampaignRequest{
		Name:            name,
		MessageTemplate: template,
		AudienceTag:     tag,
	})
	s.NoError(err)
	return resp
}

func (s *CampaignServiceSuite) TestCreateCampaign() {
	resp := s.createCampaign("March promo", "Hi {{name}}, 20% off this week", "vip")
	s.Equal(types.CampaignStatusDraft, resp.CampaignStatus)
	s.Equal("vip", resp.AudienceTag)
	s.Nil(resp.ScheduledAt)
}

func (s *CampaignServiceSuite) TestScheduleCampaignMaterializesMessages() {
	ana := s.seedCustomer("Ana", "+5511999990001", "vip")
	s.seedCustomer("Bruno", "", "vip")
	s.seedCustomer("Clara", "+5511999990003", "regular")

	created := s.createCampaign("March promo", "Hi {{name}}, 20% off this week", "vip")

	scheduled, err := s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC().Add(time.Hour),
	})
	s.NoError(err)
	s.Equal(types.CampaignStatusScheduled, scheduled.CampaignStatus)
	s.NotNil(scheduled.ScheduledAt)

	// Only Ana matched: Bruno has no phone, Clara carries another tag.
	messages, err := s.service.ListMessages(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(1, messages.Total)
	s.Equal(ana.ID, messages.Items[0].CustomerID)
	s.Equal("Hi Ana, 20% off this week", messages.Items[0].Body)
	s.Equal(types.MessageStatusPending, messages.Items[0].MessageStatus)
}

func (s *CampaignServiceSuite) TestScheduleCampaignEmptyAudience() {
	s.seedCustomer("Bruno", "", "vip")

	created := s.createCampaign("March promo", "Hi {{name}}", "vip")

	_, err := s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC().Add(time.Hour),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// The campaign stays in draft after the failed schedule.
	unchanged, err := s.service.GetCampaign(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.CampaignStatusDraft, unchanged.CampaignStatus)
}

func (s *CampaignServiceSuite) TestScheduleCampaignPastTimeRejected() {
	s.seedCustomer("Ana", "+5511999990001", "vip")
	created := s.createCampaign("March promo", "Hi {{name}}", "vip")

	_, err := s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC().Add(-time.Hour),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CampaignServiceSuite) TestScheduleCampaignTwiceRejected() {
	s.seedCustomer("Ana", "+5511999990001", "vip")
	created := s.createCampaign("March promo", "Hi {{name}}", "vip")

	_, err := s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC().Add(time.Hour),
	})
	s.NoError(err)

	_, err = s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC().Add(2 * time.Hour),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *CampaignServiceSuite) TestProcessDueCampaignsDispatchesMessages() {
	s.seedCustomer("Ana", "+5511999990001", "vip")
	s.seedCustomer("Clara", "+5511999990003", "vip")

	created := s.createCampaign("March promo", "Hi {{name}}", "vip")
	_, err := s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC(),
	})
	s.NoError(err)

	processed, err := s.service.ProcessDueCampaigns(s.GetContext())
	s.NoError(err)
	s.Equal(1, processed)
	s.Equal(2, s.GetSender().SentCount())

	resp, err := s.service.GetCampaign(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.CampaignStatusCompleted, resp.CampaignStatus)
	s.Equal(2, resp.Stats.Sent)
	s.Zero(resp.Stats.Pending)

	messages, err := s.service.ListMessages(s.GetContext(), created.ID)
	s.NoError(err)
	for _, msg := range messages.Items {
		s.Equal(types.MessageStatusSent, msg.MessageStatus)
		s.NotNil(msg.SentAt)
	}
}

func (s *CampaignServiceSuite) TestProcessDueCampaignsSkipsFutureCampaigns() {
	s.seedCustomer("Ana", "+5511999990001", "vip")

	created := s.createCampaign("March promo", "Hi {{name}}", "vip")
	_, err := s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC().Add(time.Hour),
	})
	s.NoError(err)

	processed, err := s.service.ProcessDueCampaigns(s.GetContext())
	s.NoError(err)
	s.Zero(processed)
	s.Zero(s.GetSender().SentCount())
}

func (s *CampaignServiceSuite) TestDispatchRetriesTransientFailures() {
	s.seedCustomer("Ana", "+5511999990001", "vip")

	created := s.createCampaign("March promo", "Hi {{name}}", "vip")
	_, err := s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC(),
	})
	s.NoError(err)

	// First attempt fails, the retry succeeds.
	s.GetSender().FailFirst = 1

	processed, err := s.service.ProcessDueCampaigns(s.GetContext())
	s.NoError(err)
	s.Equal(1, processed)
	s.Equal(1, s.GetSender().SentCount())

	messages, err := s.service.ListMessages(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.MessageStatusSent, messages.Items[0].MessageStatus)
	s.Equal(2, s.GetSender().Attempts(messages.Items[0].ID))
}

func (s *CampaignServiceSuite) TestDispatchMarksCampaignFailed() {
	ana := s.seedCustomer("Ana", "+5511999990001", "vip")

	created := s.createCampaign("March promo", "Hi {{name}}", "vip")
	_, err := s.service.ScheduleCampaign(s.GetContext(), created.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC(),
	})
	s.NoError(err)

	s.GetSender().FailPhones[ana.Phone] = true

	processed, err := s.service.ProcessDueCampaigns(s.GetContext())
	s.NoError(err)
	s.Equal(1, processed)
	s.Zero(s.GetSender().SentCount())

	resp, err := s.service.GetCampaign(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.CampaignStatusFailed, resp.CampaignStatus)
	s.Equal(1, resp.Stats.Failed)

	messages, err := s.service.ListMessages(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.MessageStatusFailed, messages.Items[0].MessageStatus)
	s.NotEmpty(messages.Items[0].FailureReason)
}

func (s *CampaignServiceSuite) TestListCampaignsByStatus() {
	s.seedCustomer("Ana", "+5511999990001", "vip")

	draft := s.createCampaign("Draft promo", "Hi {{name}}", "vip")
	scheduledResp := s.createCampaign("Scheduled promo", "Hi {{name}}", "vip")
	_, err := s.service.ScheduleCampaign(s.GetContext(), scheduledResp.ID, dto.ScheduleCampaignRequest{
		ScheduledAt: time.Now().UTC().Add(time.Hour),
	})
	s.NoError(err)

	resp, err := s.service.ListCampaigns(s.GetContext(), &types.CampaignFilter{
		CampaignStatus: types.CampaignStatusDraft,
	})
	s.NoError(err)
	s.Equal(1, resp.Total)
	s.Equal(draft.ID, resp.Items[0].ID)
}
