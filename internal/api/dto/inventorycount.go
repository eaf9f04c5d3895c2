package dto

import (
	"github.com/vendrahq/vendra/internal/domain/inventorycount"
	"github.com/vendrahq/vendra/internal/validator"
)

// OpenInventoryCountRequest starts a stock-taking session. When ProductIDs
// is empty every published product is snapshotted.
type OpenInventoryCountRequest struct {
	Notes      string   `json:"notes"`
	ProductIDs []string `json:"product_ids,omitempty"`
}

func (r *OpenInventoryCountRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// RecordCountLineRequest records the physically counted quantity for one line
type RecordCountLineRequest struct {
	LineID          string `json:"line_id" binding:"required" validate:"required"`
	CountedQuantity int    `json:"counted_quantity" validate:"min=0"`
}

func (r *RecordCountLineRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CloseInventoryCountRequest finishes a session. ApplyAdjustments writes
// each line's variance back to product stock.
type CloseInventoryCountRequest struct {
	ApplyAdjustments bool `json:"apply_adjustments"`
}

// InventoryCountLineResponse is one line with its computed variance
type InventoryCountLineResponse struct {
	*inventorycount.Line
	Variance int `json:"variance"`
}

// InventoryCountResponse represents the count session response structure
type InventoryCountResponse struct {
	*inventorycount.InventoryCount
	LineDetails []*InventoryCountLineResponse `json:"line_details,omitempty"`
}

func ToInventoryCountResponse(c *inventorycount.InventoryCount) *InventoryCountResponse {
	resp := &InventoryCountResponse{InventoryCount: c}
	for _, line := range c.Lines {
		resp.LineDetails = append(resp.LineDetails, &InventoryCountLineResponse{
			Line:     line,
			Variance: line.Variance(),
		})
	}
	return resp
}

// ListInventoryCountsResponse represents a count session listing
type ListInventoryCountsResponse struct {
	Items []*InventoryCountResponse `json:"items"`
	Total int                       `json:"total"`
}
