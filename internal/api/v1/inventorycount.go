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

type InventoryCountHandler struct {
	service service.InventoryCountService
	log     *logger.Logger
}

func NewInventoryCountHandler(service service.InventoryCountService, log *logger.Logger) *InventoryCountHandler {
	return &InventoryCountHandler{service: service, log: log}
}

// @Summary Open an inventory count
// @Description Start a count session, snapshotting expected stock for the selected products
// @Tags InventoryCounts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param count body dto.OpenInventoryCountRequest true "Count session"
// @Success 201 {object} dto.InventoryCountResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /inventory-counts [post]
func (h *InventoryCountHandler) OpenCount(c *gin.Context) {
	var req dto.OpenInventoryCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.OpenCount(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an inventory count
// @Tags InventoryCounts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Count ID"
// @Success 200 {object} dto.InventoryCountResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory-counts/{id} [get]
func (h *InventoryCountHandler) GetCount(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("inventory count ID is required").
			WithHint("Inventory count ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetCount(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List inventory counts
// @Tags InventoryCounts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListInventoryCountsResponse
// @Router /inventory-counts [get]
func (h *InventoryCountHandler) ListCounts(c *gin.Context) {
	var filter types.InventoryCountFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCounts(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Record a counted line
// @Tags InventoryCounts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Count ID"
// @Param line body dto.RecordCountLineRequest true "Counted line"
// @Success 200 {object} dto.InventoryCountResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory-counts/{id}/lines [post]
func (h *InventoryCountHandler) RecordLine(c *gin.Context) {
	id := c.Param("id")

	var req dto.RecordCountLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.RecordLine(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Close an inventory count
// @Description Finish the session, optionally applying each line's variance to stock
// @Tags InventoryCounts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Count ID"
// @Param close body dto.CloseInventoryCountRequest true "Close options"
// @Success 200 {object} dto.InventoryCountResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory-counts/{id}/close [post]
func (h *InventoryCountHandler) CloseCount(c *gin.Context) {
	id := c.Param("id")

	var req dto.CloseInventoryCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CloseCount(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Abandon an inventory count
// @Description Discard an open session without touching stock
// @Tags InventoryCounts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Count ID"
// @Success 200 {object} dto.InventoryCountResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /inventory-counts/{id}/abandon [post]
func (h *InventoryCountHandler) AbandonCount(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.AbandonCount(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
