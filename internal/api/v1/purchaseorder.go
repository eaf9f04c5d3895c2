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

type PurchaseOrderHandler struct {
	service service.PurchaseOrderService
	log     *logger.Logger
}

func NewPurchaseOrderHandler(service service.PurchaseOrderService, log *logger.Logger) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service, log: log}
}

// @Summary Create a purchase order
// @Description Create a draft purchase order against a supplier
// @Tags PurchaseOrders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param order body dto.CreatePurchaseOrderRequest true "Purchase order"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /purchase-orders [post]
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a purchase order
// @Tags PurchaseOrders
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("purchase order ID is required").
			WithHint("Purchase order ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List purchase orders
// @Tags PurchaseOrders
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListPurchaseOrdersResponse
// @Router /purchase-orders [get]
func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	var filter types.PurchaseOrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListPurchaseOrders(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Transition a purchase order
// @Description Move an order to sent, received or cancelled. Receiving increments stock.
// @Tags PurchaseOrders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Purchase order ID"
// @Param transition body dto.TransitionPurchaseOrderRequest true "Target status"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /purchase-orders/{id}/transition [post]
func (h *PurchaseOrderHandler) TransitionPurchaseOrder(c *gin.Context) {
	id := c.Param("id")

	var req dto.TransitionPurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.TransitionPurchaseOrder(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
