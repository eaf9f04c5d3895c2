package service

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/plan"
	"github.com/vendrahq/vendra/internal/domain/subscription"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/integration/billing"
	"github.com/vendrahq/vendra/internal/testutil"
	"github.com/vendrahq/vendra/internal/types"
)

type SubscriptionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SubscriptionService
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSubscriptionService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *SubscriptionServiceSuite) seedPlan(name string, price int64) *plan.Plan {
	p := plan.New(s.GetContext())
	p.Name = name
	p.LookupKey = name
	p.Price = decimal.NewFromInt(price)
	p.Currency = "usd"
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), p))
	return p
}

// seedActiveSubscription creates an active subscription whose period runs
// from daysElapsed days ago to daysLeft days from now.
func (s *SubscriptionServiceSuite) seedActiveSubscription(p *plan.Plan, amountCents int64, daysElapsed, daysLeft int) *subscription.Subscription {
	now := time.Now().UTC()
	sub := subscription.New(s.GetContext())
	sub.PlanID = p.ID
	sub.PlanName = p.Name
	sub.Currency = p.Currency
	sub.BillingPeriod = types.BILLING_PERIOD_MONTHLY
	sub.AmountCents = amountCents
	sub.CurrentPeriodStart = now.AddDate(0, 0, -daysElapsed)
	sub.CurrentPeriodEnd = now.AddDate(0, 0, daysLeft)
	sub.SubscriptionStatus = types.SubscriptionStatusActive
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), sub))
	return sub
}

func (s *SubscriptionServiceSuite) TestCreateSubscription() {
	p := s.seedPlan("Starter", 50)

	resp, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		PlanID: p.ID,
	})
	s.NoError(err)
	s.NotNil(resp)
	s.Equal(p.ID, resp.PlanID)
	s.Equal(types.BILLING_PERIOD_MONTHLY, resp.BillingPeriod)
	s.Equal(int64(5000), resp.AmountCents)
	s.Equal(types.SubscriptionStatusActive, resp.SubscriptionStatus)
	s.WithinDuration(resp.CurrentPeriodStart.AddDate(0, 1, 0), resp.CurrentPeriodEnd, time.Second)
}

func (s *SubscriptionServiceSuite) TestCreateSubscriptionAnnualMultipliesPrice() {
	p := s.seedPlan("Starter", 50)

	resp, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		PlanID:        p.ID,
		BillingPeriod: types.BILLING_PERIOD_ANNUAL,
	})
	s.NoError(err)
	s.Equal(int64(60000), resp.AmountCents)
	s.WithinDuration(resp.CurrentPeriodStart.AddDate(1, 0, 0), resp.CurrentPeriodEnd, time.Second)
}

func (s *SubscriptionServiceSuite) TestCreateSubscriptionUnknownPlan() {
	_, err := s.service.CreateSubscription(s.GetContext(), dto.CreateSubscriptionRequest{
		PlanID: "plan_missing",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestUpgradeRequiresActiveSubscription() {
	target := s.seedPlan("Pro", 300)

	resp, err := s.service.UpgradeSubscription(s.GetContext(), dto.UpgradeSubscriptionRequest{
		NewPlanID: target.ID,
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
	s.Zero(s.GetBillingGateway().UpdateCallCount())
	s.Zero(s.GetBillingGateway().PaymentLinkCallCount())
}

func (s *SubscriptionServiceSuite) TestUpgradeExpiredPeriodRejected() {
	current := s.seedPlan("Starter", 120)
	target := s.seedPlan("Pro", 300)
	sub := s.seedActiveSubscription(current, 12000, 40, -10)

	resp, err := s.service.UpgradeSubscription(s.GetContext(), dto.UpgradeSubscriptionRequest{
		NewPlanID: target.ID,
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
	s.Zero(s.GetBillingGateway().UpdateCallCount())
	s.Zero(s.GetBillingGateway().PaymentLinkCallCount())

	// No writes happened on the rejected path.
	unchanged, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), sub.ID)
	s.NoError(err)
	s.Equal(current.ID, unchanged.PlanID)
}

func (s *SubscriptionServiceSuite) TestUpgradeViaPaymentLink() {
	current := s.seedPlan("Starter", 120)
	target := s.seedPlan("Pro", 300)
	original := s.seedActiveSubscription(current, 12000, 20, 10)

	resp, err := s.service.UpgradeSubscription(s.GetContext(), dto.UpgradeSubscriptionRequest{
		NewPlanID: target.ID,
	})
	s.NoError(err)
	s.Equal(types.UpgradeOutcomePaymentLink, resp.Outcome)
	s.Equal("Pro", resp.NewPlan)
	s.Equal("https://pay.example.com/plink_test", resp.PaymentURL)
	s.NotNil(resp.AmountToPay)

	// Credit 40.00 for 10 unused days, new plan costs 100.00, net 60.00.
	s.True(resp.CreditApplied.Equal(decimal.NewFromInt(40)), "credit %s", resp.CreditApplied)
	s.True(resp.AmountToPay.Equal(decimal.NewFromInt(60)), "amount %s", resp.AmountToPay)

	gateway := s.GetBillingGateway()
	s.Zero(gateway.UpdateCallCount())
	s.Equal(1, gateway.PaymentLinkCallCount())
	linkReq := gateway.PaymentLinkCalls[0]
	s.Equal(int64(6000), linkReq.AmountCents)
	s.Equal("usd", linkReq.Currency)
	s.Equal("https://app.test.vendra.dev/plans?upgrade=success", linkReq.RedirectURL)
	s.Equal("true", linkReq.Metadata[types.MetadataKeyIsUpgrade])
	s.Equal(types.GetTenantID(s.GetContext()), linkReq.Metadata[types.MetadataKeyTenantID])
	s.Equal(original.ID, linkReq.Metadata[types.MetadataKeyOriginalSubscriptionID])

	// A pending subscription was persisted, awaiting checkout.
	pending, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), resp.Subscription.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusIncomplete, pending.SubscriptionStatus)
	s.Equal(target.ID, pending.PlanID)
	s.Equal(int64(30000), pending.AmountCents)

	// The original subscription stays active until checkout completes.
	active, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), original.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, active.SubscriptionStatus)
}

func (s *SubscriptionServiceSuite) TestUpgradeDirectApplyWhenCreditCovers() {
	current := s.seedPlan("Pro", 300)
	target := s.seedPlan("Lite", 60)
	sub := s.seedActiveSubscription(current, 30000, 20, 10)

	resp, err := s.service.UpgradeSubscription(s.GetContext(), dto.UpgradeSubscriptionRequest{
		NewPlanID: target.ID,
	})
	s.NoError(err)
	s.Equal(types.UpgradeOutcomeDirectApply, resp.Outcome)
	s.Empty(resp.PaymentURL)
	s.Nil(resp.AmountToPay)
	s.NotNil(resp.RemainingCredit)
	// Credit 100.00, new plan costs 20.00 for the remaining days.
	s.True(resp.RemainingCredit.Equal(decimal.NewFromInt(80)), "remaining %s", resp.RemainingCredit)

	s.Zero(s.GetBillingGateway().UpdateCallCount())
	s.Zero(s.GetBillingGateway().PaymentLinkCallCount())

	updated, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), sub.ID)
	s.NoError(err)
	s.Equal(target.ID, updated.PlanID)
	s.Equal(int64(6000), updated.AmountCents)
	s.Equal(types.SubscriptionStatusActive, updated.SubscriptionStatus)
	s.Equal("80.00", updated.Metadata[types.MetadataKeyRemainingCredit])
	s.NotEmpty(updated.Metadata[types.MetadataKeyUpgradedAt])
}

func (s *SubscriptionServiceSuite) TestUpgradeViaProviderUpdate() {
	current := s.seedPlan("Starter", 120)
	target := s.seedPlan("Pro", 300)
	sub := s.seedActiveSubscription(current, 12000, 20, 10)
	sub.ProviderSubscriptionID = lo.ToPtr("sub_provider_1")
	s.NoError(s.GetStores().SubscriptionRepo.Update(s.GetContext(), sub))

	resp, err := s.service.UpgradeSubscription(s.GetContext(), dto.UpgradeSubscriptionRequest{
		NewPlanID: target.ID,
	})
	s.NoError(err)
	s.Equal(types.UpgradeOutcomeProviderUpdate, resp.Outcome)
	s.Empty(resp.PaymentURL)

	gateway := s.GetBillingGateway()
	s.Equal(1, gateway.UpdateCallCount())
	s.Zero(gateway.PaymentLinkCallCount())
	s.Equal("sub_provider_1", gateway.UpdateCalls[0].ProviderSubscriptionID)
	s.Equal(target.ID, gateway.UpdateCalls[0].PlanID)

	updated, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), sub.ID)
	s.NoError(err)
	s.Equal(target.ID, updated.PlanID)
	s.Equal(int64(30000), updated.AmountCents)
	s.Equal("40.00", updated.Metadata[types.MetadataKeyPreviousPlanCredit])
}

func (s *SubscriptionServiceSuite) TestUpgradeProviderFailureFallsBackToPaymentLink() {
	current := s.seedPlan("Starter", 120)
	target := s.seedPlan("Pro", 300)
	sub := s.seedActiveSubscription(current, 12000, 20, 10)
	sub.ProviderSubscriptionID = lo.ToPtr("sub_provider_1")
	s.NoError(s.GetStores().SubscriptionRepo.Update(s.GetContext(), sub))

	gateway := s.GetBillingGateway()
	gateway.UpdateErr = ierr.NewError("no matching provider price").
		WithHint("No provider price matches the requested plan").
		Mark(ierr.ErrNotFound)

	resp, err := s.service.UpgradeSubscription(s.GetContext(), dto.UpgradeSubscriptionRequest{
		NewPlanID: target.ID,
	})
	s.NoError(err)
	s.Equal(types.UpgradeOutcomePaymentLink, resp.Outcome)
	s.Equal(1, gateway.UpdateCallCount())
	s.Equal(1, gateway.PaymentLinkCallCount())
}

func (s *SubscriptionServiceSuite) TestUpgradeMissingTenantContext() {
	target := s.seedPlan("Pro", 300)

	resp, err := s.service.UpgradeSubscription(context.Background(), dto.UpgradeSubscriptionRequest{
		NewPlanID: target.ID,
	})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *SubscriptionServiceSuite) TestActivatePendingUpgrade() {
	current := s.seedPlan("Starter", 120)
	target := s.seedPlan("Pro", 300)
	original := s.seedActiveSubscription(current, 12000, 20, 10)

	pending := subscription.New(s.GetContext())
	pending.PlanID = target.ID
	pending.PlanName = target.Name
	pending.Currency = target.Currency
	pending.BillingPeriod = types.BILLING_PERIOD_MONTHLY
	pending.AmountCents = 30000
	pending.SubscriptionStatus = types.SubscriptionStatusIncomplete
	pending.Metadata[types.MetadataKeyOriginalSubscriptionID] = original.ID
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), pending))

	err := s.service.ActivatePendingUpgrade(s.GetContext(), &billing.WebhookEvent{
		ID:   "evt_1",
		Type: billing.WebhookEventCheckoutCompleted,
		Metadata: types.Metadata{
			types.MetadataKeyIsUpgrade:      "true",
			types.MetadataKeySubscriptionID: pending.ID,
		},
	})
	s.NoError(err)

	activated, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), pending.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, activated.SubscriptionStatus)
	s.WithinDuration(activated.CurrentPeriodStart.AddDate(0, 1, 0), activated.CurrentPeriodEnd, time.Second)
	s.NotEmpty(activated.Metadata[types.MetadataKeyUpgradedAt])

	cancelled, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), original.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusCancelled, cancelled.SubscriptionStatus)
	s.NotNil(cancelled.CancelledAt)
}

func (s *SubscriptionServiceSuite) TestActivatePendingUpgradeIgnoresOtherEvents() {
	current := s.seedPlan("Starter", 120)
	original := s.seedActiveSubscription(current, 12000, 20, 10)

	err := s.service.ActivatePendingUpgrade(s.GetContext(), &billing.WebhookEvent{
		ID:       "evt_1",
		Type:     "invoice.paid",
		Metadata: types.Metadata{types.MetadataKeyIsUpgrade: "true"},
	})
	s.NoError(err)

	err = s.service.ActivatePendingUpgrade(s.GetContext(), &billing.WebhookEvent{
		ID:       "evt_2",
		Type:     billing.WebhookEventCheckoutCompleted,
		Metadata: types.Metadata{},
	})
	s.NoError(err)

	unchanged, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), original.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, unchanged.SubscriptionStatus)
}

func (s *SubscriptionServiceSuite) TestActivatePendingUpgradeMissingReference() {
	err := s.service.ActivatePendingUpgrade(s.GetContext(), &billing.WebhookEvent{
		ID:       "evt_1",
		Type:     billing.WebhookEventCheckoutCompleted,
		Metadata: types.Metadata{types.MetadataKeyIsUpgrade: "true"},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SubscriptionServiceSuite) TestActivatePendingUpgradeSkipsNonPending() {
	current := s.seedPlan("Starter", 120)
	sub := s.seedActiveSubscription(current, 12000, 20, 10)

	err := s.service.ActivatePendingUpgrade(s.GetContext(), &billing.WebhookEvent{
		ID:   "evt_1",
		Type: billing.WebhookEventCheckoutCompleted,
		Metadata: types.Metadata{
			types.MetadataKeyIsUpgrade:      "true",
			types.MetadataKeySubscriptionID: sub.ID,
		},
	})
	s.NoError(err)

	unchanged, err := s.GetStores().SubscriptionRepo.Get(s.GetContext(), sub.ID)
	s.NoError(err)
	s.Equal(types.SubscriptionStatusActive, unchanged.SubscriptionStatus)
}
