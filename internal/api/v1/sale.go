package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vendrahq/vendra/internal/api/dto"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/service"
	"github.com/vendrahq/vendra/internal/types"
)

type SaleHandler struct {
	service service.SaleService
	log     *logger.Logger
}

func NewSaleHandler(service service.SaleService, log *logger.Logger) *SaleHandler {
	return &SaleHandler{service: service, log: log}
}

// @Summary Record a sale
// @Description Record a point-of-sale transaction, decrementing stock per line
// @Tags Sales
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sale body dto.CreateSaleRequest true "Sale"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateSale(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a sale
// @Tags Sales
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("sale ID is required").
			WithHint("Sale ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetSale(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List sales
// @Tags Sales
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListSalesResponse
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	var filter types.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListSales(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Void a sale
// @Description Cancel a completed sale and restore the sold stock
// @Tags Sales
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /sales/{id}/void [post]
func (h *SaleHandler) VoidSale(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.VoidSale(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Daily sales summary
// @Description Aggregate the day's completed sales by payment method
// @Tags Sales
// @Produce json
// @Security ApiKeyAuth
// @Param date query string false "Day in YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.DailySummaryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /sales/summary/daily [get]
func (h *SaleHandler) GetDailySummary(c *gin.Context) {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("Date must be in YYYY-MM-DD format").
				Mark(ierr.ErrValidation))
			return
		}
		day = parsed
	}

	resp, err := h.service.GetDailySummary(c.Request.Context(), day)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
