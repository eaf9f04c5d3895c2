package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/integration/billing"
	"github.com/vendrahq/vendra/internal/types"
)

// UpdateSubscriptionPlan retrieves the provider subscription, locates the
// active price tagged with the target plan and billing period, and updates
// the subscription's single line item in place with provider-managed
// proration.
func (g *Gateway) UpdateSubscriptionPlan(ctx context.Context, req *billing.UpdateSubscriptionPlanRequest) (*billing.ProviderSubscription, error) {
	sub, err := g.client.V1Subscriptions.Retrieve(ctx, req.ProviderSubscriptionID, &stripe.SubscriptionRetrieveParams{})
	if err != nil {
		g.logger.Errorw("failed to retrieve stripe subscription",
			"error", err,
			"provider_subscription_id", req.ProviderSubscriptionID)
		return nil, ierr.NewError("failed to retrieve provider subscription").
			WithHint("Unable to retrieve the subscription from the payment provider").
			Mark(ierr.ErrIntegration)
	}

	if sub.Items == nil || len(sub.Items.Data) == 0 {
		return nil, ierr.NewError("provider subscription has no line items").
			WithHint("The provider subscription cannot be updated").
			WithReportableDetails(map[string]interface{}{
				"provider_subscription_id": req.ProviderSubscriptionID,
			}).
			Mark(ierr.ErrIntegration)
	}

	price, err := g.findPlanPrice(ctx, req.PlanID, req.BillingPeriod)
	if err != nil {
		return nil, err
	}

	params := &stripe.SubscriptionUpdateParams{
		Items: []*stripe.SubscriptionUpdateItemParams{
			{
				ID:    stripe.String(sub.Items.Data[0].ID),
				Price: stripe.String(price.ID),
			},
		},
		ProrationBehavior: stripe.String("create_prorations"),
	}
	params.AddMetadata(types.MetadataKeyPlanID, req.PlanID)
	params.AddMetadata(types.MetadataKeyBillingPeriod, string(req.BillingPeriod))

	updated, err := g.client.V1Subscriptions.Update(ctx, sub.ID, params)
	if err != nil {
		g.logger.Errorw("failed to update stripe subscription",
			"error", err,
			"provider_subscription_id", sub.ID,
			"price_id", price.ID)
		return nil, ierr.NewError("failed to update provider subscription").
			WithHint("The payment provider rejected the subscription update").
			Mark(ierr.ErrIntegration)
	}

	g.logger.Infow("updated provider subscription with proration",
		"provider_subscription_id", updated.ID,
		"price_id", price.ID,
		"plan_id", req.PlanID,
		"billing_period", req.BillingPeriod)

	result := &billing.ProviderSubscription{
		ID:     updated.ID,
		Status: string(updated.Status),
	}
	if len(updated.Items.Data) > 0 && updated.Items.Data[0].Price != nil {
		result.PriceID = updated.Items.Data[0].Price.ID
		result.UnitAmountCents = updated.Items.Data[0].Price.UnitAmount
		result.CurrentPeriodEnd = updated.Items.Data[0].CurrentPeriodEnd
	}
	return result, nil
}

// findPlanPrice searches active recurring prices tagged with the plan and
// billing period. A miss is reported as not-found so the caller can fall
// back to the payment-link flow.
func (g *Gateway) findPlanPrice(ctx context.Context, planID string, period types.BillingPeriod) (*stripe.Price, error) {
	params := &stripe.PriceSearchParams{}
	params.Query = fmt.Sprintf("active:'true' AND metadata['%s']:'%s' AND metadata['%s']:'%s'",
		types.MetadataKeyPlanID, planID,
		types.MetadataKeyBillingPeriod, string(period))
	params.Limit = stripe.Int64(1)

	iter := g.client.V1Prices.Search(ctx, params)
	for price, err := range iter {
		if err != nil {
			g.logger.Errorw("failed to search stripe prices",
				"error", err,
				"plan_id", planID,
				"billing_period", period)
			return nil, ierr.NewError("failed to search provider prices").
				WithHint("Unable to look up plan prices with the payment provider").
				Mark(ierr.ErrIntegration)
		}
		return price, nil
	}

	return nil, ierr.NewError("no provider price for plan").
		WithHint("The plan has no matching price with the payment provider").
		WithReportableDetails(map[string]interface{}{
			"plan_id":        planID,
			"billing_period": period,
		}).
		Mark(ierr.ErrNotFound)
}

// CreateUpgradePaymentLink creates a transient product and one-time price
// for the discounted net amount, then a payment link that redirects back to
// the caller's plans page after completion. All three objects carry the
// upgrade metadata so the webhook can finish the upgrade.
func (g *Gateway) CreateUpgradePaymentLink(ctx context.Context, req *billing.UpgradePaymentLinkRequest) (*billing.PaymentLink, error) {
	productParams := &stripe.ProductCreateParams{
		Name: stripe.String(req.ProductName),
	}
	for k, v := range req.Metadata {
		productParams.AddMetadata(k, v)
	}
	product, err := g.client.V1Products.Create(ctx, productParams)
	if err != nil {
		g.logger.Errorw("failed to create stripe product", "error", err, "name", req.ProductName)
		return nil, ierr.NewError("failed to create upgrade product").
			WithHint("Unable to create the upgrade product with the payment provider").
			Mark(ierr.ErrIntegration)
	}

	priceParams := &stripe.PriceCreateParams{
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(req.AmountCents),
		Currency:   stripe.String(req.Currency),
	}
	for k, v := range req.Metadata {
		priceParams.AddMetadata(k, v)
	}
	price, err := g.client.V1Prices.Create(ctx, priceParams)
	if err != nil {
		g.logger.Errorw("failed to create stripe price",
			"error", err,
			"product_id", product.ID,
			"amount_cents", req.AmountCents)
		return nil, ierr.NewError("failed to create upgrade price").
			WithHint("Unable to create the upgrade price with the payment provider").
			Mark(ierr.ErrIntegration)
	}

	linkParams := &stripe.PaymentLinkCreateParams{
		LineItems: []*stripe.PaymentLinkCreateLineItemParams{
			{
				Price:    stripe.String(price.ID),
				Quantity: stripe.Int64(1),
			},
		},
		AfterCompletion: &stripe.PaymentLinkCreateAfterCompletionParams{
			Type: stripe.String("redirect"),
			Redirect: &stripe.PaymentLinkCreateAfterCompletionRedirectParams{
				URL: stripe.String(req.RedirectURL),
			},
		},
	}
	for k, v := range req.Metadata {
		linkParams.AddMetadata(k, v)
	}
	link, err := g.client.V1PaymentLinks.Create(ctx, linkParams)
	if err != nil {
		g.logger.Errorw("failed to create stripe payment link",
			"error", err,
			"price_id", price.ID)
		return nil, ierr.NewError("failed to create payment link").
			WithHint("Unable to create the payment link with the payment provider").
			Mark(ierr.ErrIntegration)
	}

	g.logger.Infow("created upgrade payment link",
		"payment_link_id", link.ID,
		"product_id", product.ID,
		"price_id", price.ID,
		"amount_cents", req.AmountCents)

	return &billing.PaymentLink{
		ID:        link.ID,
		URL:       link.URL,
		ProductID: product.ID,
		PriceID:   price.ID,
	}, nil
}

// ConstructWebhookEvent verifies the payload signature, tolerating API
// version drift between the webhook endpoint and the pinned SDK version.
func (g *Gateway) ConstructWebhookEvent(payload []byte, signature string) (*billing.WebhookEvent, error) {
	options := webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, options)
	if err != nil {
		g.logger.Errorw("stripe webhook verification failed", "error", err)
		return nil, ierr.NewError("failed to verify webhook signature").
			WithHint("Invalid webhook signature or payload").
			Mark(ierr.ErrValidation)
	}

	metadata := types.Metadata{}
	if rawMeta, ok := event.Data.Object["metadata"].(map[string]interface{}); ok {
		for k, v := range rawMeta {
			if s, ok := v.(string); ok {
				metadata[k] = s
			}
		}
	}

	return &billing.WebhookEvent{
		ID:       event.ID,
		Type:     string(event.Type),
		Metadata: metadata,
	}, nil
}
