package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendrahq/vendra/internal/api/dto"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/service"
	"github.com/vendrahq/vendra/internal/types"
)

type CampaignHandler struct {
	service service.CampaignService
	log     *logger.Logger
}

func NewCampaignHandler(service service.CampaignService, log *logger.Logger) *CampaignHandler {
	return &CampaignHandler{service: service, log: log}
}

// @Summary Create a campaign
// @Description Create a draft messaging campaign
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param campaign body dto.CreateCampaignRequest true "Campaign"
// @Success 201 {object} dto.CampaignResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCampaign(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a campaign
// @Tags Campaigns
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.CampaignResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("campaign ID is required").
			WithHint("Campaign ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetCampaign(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List campaigns
// @Tags Campaigns
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListCampaignsResponse
// @Router /campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	var filter types.CampaignFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCampaigns(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Schedule a campaign
// @Description Queue a draft campaign for dispatch, materializing one message per audience customer
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Campaign ID"
// @Param schedule body dto.ScheduleCampaignRequest true "Schedule"
// @Success 200 {object} dto.CampaignResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /campaigns/{id}/schedule [post]
func (h *CampaignHandler) ScheduleCampaign(c *gin.Context) {
	id := c.Param("id")

	var req dto.ScheduleCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ScheduleCampaign(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List campaign messages
// @Tags Campaigns
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.ListMessagesResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /campaigns/{id}/messages [get]
func (h *CampaignHandler) ListMessages(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("campaign ID is required").
			WithHint("Campaign ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListMessages(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
