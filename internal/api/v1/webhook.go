package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/integration/billing"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/service"
	"github.com/vendrahq/vendra/internal/types"
)

type WebhookHandler struct {
	gateway billing.Gateway
	service service.SubscriptionService
	log     *logger.Logger
}

func NewWebhookHandler(gateway billing.Gateway, service service.SubscriptionService, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{gateway: gateway, service: service, log: log}
}

// @Summary Billing provider webhook
// @Description Verify and process billing provider events. Checkout completions activate pending upgrades.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} ierr.ErrorResponse
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Unable to read webhook payload").
			Mark(ierr.ErrValidation))
		return
	}

	event, err := h.gateway.ConstructWebhookEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.Error(err)
		return
	}

	ctx := c.Request.Context()
	if tenantID := event.Metadata[types.MetadataKeyTenantID]; tenantID != "" {
		ctx = types.SetTenantID(ctx, tenantID)
	}

	if err := h.service.ActivatePendingUpgrade(ctx, event); err != nil {
		h.log.Errorw("webhook processing failed",
			"event_id", event.ID,
			"event_type", event.Type,
			"error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
