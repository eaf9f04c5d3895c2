package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/service"
	"github.com/vendrahq/vendra/internal/types"
)

type AdminHandler struct {
	service service.AdminService
	log     *logger.Logger
}

func NewAdminHandler(service service.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{service: service, log: log}
}

// @Summary List browsable entities
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ListEntitiesResponse
// @Router /admin/entities [get]
func (h *AdminHandler) ListEntities(c *gin.Context) {
	resp, err := h.service.ListEntities(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Browse an entity
// @Description Page through raw records of an allowlisted entity, scoped to the caller's tenant
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param entity path string true "Entity name"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.BrowseEntityResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /admin/entities/{entity} [get]
func (h *AdminHandler) BrowseEntity(c *gin.Context) {
	entity := c.Param("entity")
	if entity == "" {
		c.Error(ierr.NewError("entity name is required").
			WithHint("Entity name is required").
			Mark(ierr.ErrValidation))
		return
	}

	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid pagination parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.BrowseEntity(c.Request.Context(), entity, &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
