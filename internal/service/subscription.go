package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vendrahq/vendra/internal/api/dto"
	"github.com/vendrahq/vendra/internal/domain/plan"
	"github.com/vendrahq/vendra/internal/domain/proration"
	"github.com/vendrahq/vendra/internal/domain/subscription"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/integration/billing"
	"github.com/vendrahq/vendra/internal/types"
)

type SubscriptionService interface {
	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, filter *types.SubscriptionFilter) (*dto.ListSubscriptionsResponse, error)
	// UpgradeSubscription moves the tenant's active subscription to a new
	// plan. The response is a tagged union discriminated by Outcome.
	UpgradeSubscription(ctx context.Context, req dto.UpgradeSubscriptionRequest) (*dto.UpgradeSubscriptionResponse, error)
	// ActivatePendingUpgrade finishes a payment-link upgrade once the
	// provider confirms checkout completion.
	ActivatePendingUpgrade(ctx context.Context, event *billing.WebhookEvent) error
}

type subscriptionService struct {
	ServiceParams
	calculator *proration.Calculator
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{
		ServiceParams: params,
		calculator:    proration.NewCalculator(),
	}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PlanRepo.Get(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	period := req.GetBillingPeriod()
	now := time.Now().UTC()

	sub := subscription.New(ctx)
	sub.PlanID = p.ID
	sub.PlanName = p.Name
	sub.Currency = p.Currency
	sub.BillingPeriod = period
	sub.AmountCents = p.SelectPrice(period).Mul(centsPerUnit).Round(0).IntPart()
	sub.CurrentPeriodStart = now
	sub.CurrentPeriodEnd = now.AddDate(0, period.Months(), 0)
	sub.ProviderSubscriptionID = req.ProviderSubscriptionID
	sub.SubscriptionStatus = types.SubscriptionStatusActive

	if err := s.SubscriptionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.Logger.Infow("created subscription",
		"subscription_id", sub.ID,
		"plan_id", p.ID,
		"billing_period", period)

	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id string) (*dto.SubscriptionResponse, error) {
	sub, err := s.SubscriptionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionResponse{Subscription: sub}, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, filter *types.SubscriptionFilter) (*dto.ListSubscriptionsResponse, error) {
	subs, err := s.SubscriptionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListSubscriptionsResponse{
		Items: make([]*dto.SubscriptionResponse, len(subs)),
		Total: len(subs),
	}
	for i, sub := range subs {
		resp.Items[i] = &dto.SubscriptionResponse{Subscription: sub}
	}
	return resp, nil
}

func (s *subscriptionService) UpgradeSubscription(ctx context.Context, req dto.UpgradeSubscriptionRequest) (*dto.UpgradeSubscriptionResponse, error) {
	if types.GetTenantID(ctx) == "" {
		return nil, ierr.NewError("missing tenant context").
			WithHint("Authentication is required").
			Mark(ierr.ErrPermissionDenied)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.activeSubscription(ctx)
	if err != nil {
		return nil, err
	}

	newPlan, err := s.PlanRepo.Get(ctx, req.NewPlanID)
	if err != nil {
		return nil, err
	}

	period := req.GetBillingPeriod()
	now := time.Now().UTC()

	quote, err := s.calculator.QuoteUpgrade(proration.UpgradeParams{
		CurrentAmountCents: sub.AmountCents,
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		NewPlanPrice:       newPlan.SelectPrice(period),
		AsOf:               now,
	})
	if err != nil {
		return nil, err
	}
	if quote.RemainingDays <= 0 {
		return nil, ierr.NewError("billing period already expired").
			WithHint("The current billing period has already expired").
			Mark(ierr.ErrValidation)
	}

	s.Logger.Infow("computed upgrade quote",
		"subscription_id", sub.ID,
		"new_plan_id", newPlan.ID,
		"billing_period", period,
		"remaining_days", quote.RemainingDays,
		"credit", quote.Credit,
		"amount_to_pay_cents", quote.AmountToPayCents)

	// Branch A: in-place provider update with provider-managed proration.
	// Any gateway error falls through to the payment-link flow.
	if sub.HasProviderSubscription() {
		resp, err := s.upgradeViaProvider(ctx, sub, newPlan, period, quote, now)
		if err == nil {
			return resp, nil
		}
		s.Logger.Warnw("provider-managed upgrade unavailable, falling back",
			"error", err,
			"subscription_id", sub.ID,
			"provider_subscription_id", *sub.ProviderSubscriptionID)
	}

	if quote.AmountToPayCents > 0 {
		return s.upgradeViaPaymentLink(ctx, sub, newPlan, period, quote)
	}
	return s.upgradeDirectApply(ctx, sub, newPlan, period, quote, now)
}

// activeSubscription returns the tenant's first active subscription.
// Multiple active subscriptions are tolerated; the newest wins.
func (s *subscriptionService) activeSubscription(ctx context.Context) (*subscription.Subscription, error) {
	subs, err := s.SubscriptionRepo.ListByStatus(ctx, types.SubscriptionStatusActive)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, ierr.NewError("no active subscription").
			WithHint("No active subscription was found for this account").
			Mark(ierr.ErrNotFound)
	}
	return subs[0], nil
}

func (s *subscriptionService) upgradeViaProvider(
	ctx context.Context,
	sub *subscription.Subscription,
	newPlan *plan.Plan,
	period types.BillingPeriod,
	quote *proration.UpgradeQuote,
	now time.Time,
) (*dto.UpgradeSubscriptionResponse, error) {
	_, err := s.BillingGateway.UpdateSubscriptionPlan(ctx, &billing.UpdateSubscriptionPlanRequest{
		ProviderSubscriptionID: *sub.ProviderSubscriptionID,
		PlanID:                 newPlan.ID,
		BillingPeriod:          period,
	})
	if err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		sub.PlanID = newPlan.ID
		sub.PlanName = newPlan.Name
		sub.BillingPeriod = period
		sub.AmountCents = quote.NewPlanPrice.Mul(centsPerUnit).Round(0).IntPart()
		if sub.Metadata == nil {
			sub.Metadata = types.Metadata{}
		}
		sub.Metadata[types.MetadataKeyUpgradedAt] = now.Format(time.RFC3339)
		sub.Metadata[types.MetadataKeyPreviousPlanCredit] = quote.Credit.StringFixed(2)
		return s.SubscriptionRepo.Update(ctx, sub)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("upgraded subscription via provider",
		"subscription_id", sub.ID,
		"plan_id", newPlan.ID)

	return &dto.UpgradeSubscriptionResponse{
		Outcome:       types.UpgradeOutcomeProviderUpdate,
		Message:       "Subscription upgraded with provider-managed proration",
		NewPlan:       newPlan.Name,
		CreditApplied: quote.Credit.Round(2),
		Subscription:  &dto.SubscriptionResponse{Subscription: sub},
	}, nil
}

func (s *subscriptionService) upgradeViaPaymentLink(
	ctx context.Context,
	sub *subscription.Subscription,
	newPlan *plan.Plan,
	period types.BillingPeriod,
	quote *proration.UpgradeQuote,
) (*dto.UpgradeSubscriptionResponse, error) {
	pending := subscription.New(ctx)
	pending.PlanID = newPlan.ID
	pending.PlanName = newPlan.Name
	pending.Currency = newPlan.Currency
	pending.BillingPeriod = period
	pending.AmountCents = quote.NewPlanPrice.Mul(centsPerUnit).Round(0).IntPart()
	pending.SubscriptionStatus = types.SubscriptionStatusIncomplete
	pending.Metadata = types.Metadata{
		types.MetadataKeyTenantID:               types.GetTenantID(ctx),
		types.MetadataKeySubscriptionID:         pending.ID,
		types.MetadataKeyPlanID:                 newPlan.ID,
		types.MetadataKeyBillingPeriod:          string(period),
		types.MetadataKeyIsUpgrade:              "true",
		types.MetadataKeyOriginalSubscriptionID: sub.ID,
		types.MetadataKeyCreditApplied:          quote.Credit.StringFixed(2),
		types.MetadataKeyAmountToPay:            quote.AmountToPay.StringFixed(2),
	}

	link, err := s.BillingGateway.CreateUpgradePaymentLink(ctx, &billing.UpgradePaymentLinkRequest{
		ProductName: fmt.Sprintf("Upgrade to %s (%s)", newPlan.Name, period),
		AmountCents: quote.AmountToPayCents,
		Currency:    newPlan.Currency,
		RedirectURL: s.redirectURL(ctx),
		Metadata:    pending.Metadata,
	})
	if err != nil {
		return nil, err
	}

	if err := s.SubscriptionRepo.Create(ctx, pending); err != nil {
		return nil, err
	}

	s.Logger.Infow("created upgrade payment link",
		"subscription_id", sub.ID,
		"pending_subscription_id", pending.ID,
		"payment_link_id", link.ID,
		"amount_to_pay_cents", quote.AmountToPayCents)

	amountToPay := quote.AmountToPay.Round(2)
	return &dto.UpgradeSubscriptionResponse{
		Outcome:       types.UpgradeOutcomePaymentLink,
		Message:       "Complete the payment to finish the upgrade",
		NewPlan:       newPlan.Name,
		CreditApplied: quote.Credit.Round(2),
		PaymentURL:    link.URL,
		AmountToPay:   &amountToPay,
		Subscription:  &dto.SubscriptionResponse{Subscription: pending},
	}, nil
}

func (s *subscriptionService) upgradeDirectApply(
	ctx context.Context,
	sub *subscription.Subscription,
	newPlan *plan.Plan,
	period types.BillingPeriod,
	quote *proration.UpgradeQuote,
	now time.Time,
) (*dto.UpgradeSubscriptionResponse, error) {
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		sub.PlanID = newPlan.ID
		sub.PlanName = newPlan.Name
		sub.BillingPeriod = period
		sub.AmountCents = quote.NewPlanPrice.Mul(centsPerUnit).Round(0).IntPart()
		if sub.Metadata == nil {
			sub.Metadata = types.Metadata{}
		}
		sub.Metadata[types.MetadataKeyUpgradedAt] = now.Format(time.RFC3339)
		sub.Metadata[types.MetadataKeyRemainingCredit] = quote.RemainingCredit().StringFixed(2)
		return s.SubscriptionRepo.Update(ctx, sub)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("applied upgrade directly from accrued credit",
		"subscription_id", sub.ID,
		"plan_id", newPlan.ID,
		"remaining_credit", quote.RemainingCredit())

	remaining := quote.RemainingCredit().Round(2)
	return &dto.UpgradeSubscriptionResponse{
		Outcome:         types.UpgradeOutcomeDirectApply,
		Message:         "Upgrade applied, fully covered by remaining credit",
		NewPlan:         newPlan.Name,
		CreditApplied:   quote.Credit.Round(2),
		RemainingCredit: &remaining,
		Subscription:    &dto.SubscriptionResponse{Subscription: sub},
	}, nil
}

// ActivatePendingUpgrade promotes the incomplete subscription referenced by
// the checkout metadata to active and cancels the one it replaces. Events
// without upgrade metadata are ignored.
func (s *subscriptionService) ActivatePendingUpgrade(ctx context.Context, event *billing.WebhookEvent) error {
	if event.Type != billing.WebhookEventCheckoutCompleted {
		return nil
	}
	if event.Metadata[types.MetadataKeyIsUpgrade] != "true" {
		return nil
	}

	pendingID := event.Metadata[types.MetadataKeySubscriptionID]
	if pendingID == "" {
		return ierr.NewError("upgrade event missing subscription reference").
			WithHint("The checkout event has no subscription metadata").
			Mark(ierr.ErrValidation)
	}

	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		pending, err := s.SubscriptionRepo.Get(ctx, pendingID)
		if err != nil {
			return err
		}
		if pending.SubscriptionStatus != types.SubscriptionStatusIncomplete {
			s.Logger.Warnw("upgrade activation for non-pending subscription, skipping",
				"subscription_id", pending.ID,
				"subscription_status", pending.SubscriptionStatus)
			return nil
		}

		now := time.Now().UTC()
		pending.SubscriptionStatus = types.SubscriptionStatusActive
		pending.CurrentPeriodStart = now
		pending.CurrentPeriodEnd = now.AddDate(0, pending.BillingPeriod.Months(), 0)
		pending.Metadata[types.MetadataKeyUpgradedAt] = now.Format(time.RFC3339)
		if err := s.SubscriptionRepo.Update(ctx, pending); err != nil {
			return err
		}

		originalID := pending.Metadata[types.MetadataKeyOriginalSubscriptionID]
		if originalID == "" {
			return nil
		}
		original, err := s.SubscriptionRepo.Get(ctx, originalID)
		if err != nil {
			if ierr.IsNotFound(err) {
				return nil
			}
			return err
		}
		original.SubscriptionStatus = types.SubscriptionStatusCancelled
		original.CancelledAt = &now
		if err := s.SubscriptionRepo.Update(ctx, original); err != nil {
			return err
		}

		s.Logger.Infow("activated upgraded subscription",
			"subscription_id", pending.ID,
			"original_subscription_id", originalID)
		return nil
	})
}

func (s *subscriptionService) redirectURL(ctx context.Context) string {
	origin := types.GetRequestOrigin(ctx)
	if origin == "" {
		origin = s.Config.Billing.DefaultRedirectOrigin
	}
	return fmt.Sprintf("%s/plans?upgrade=success", origin)
}
