package cron

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/service"
)

type CampaignCronHandler struct {
	logger          *logger.Logger
	campaignService service.CampaignService
}

func NewCampaignCronHandler(logger *logger.Logger, campaignService service.CampaignService) *CampaignCronHandler {
	return &CampaignCronHandler{
		logger:          logger,
		campaignService: campaignService,
	}
}

// ProcessDueCampaigns dispatches every scheduled campaign whose send time
// has arrived. Runs across all tenants.
func (h *CampaignCronHandler) ProcessDueCampaigns(c *gin.Context) {
	h.logger.Infow("starting campaign dispatch cron job", "time", time.Now().UTC().Format(time.RFC3339))

	processed, err := h.campaignService.ProcessDueCampaigns(c.Request.Context())
	if err != nil {
		h.logger.Errorw("campaign dispatch cron job failed", "error", err)
		c.Error(err)
		return
	}

	h.logger.Infow("completed campaign dispatch cron job", "processed", processed)
	c.JSON(http.StatusOK, gin.H{
		"status":    "completed",
		"processed": processed,
	})
}
