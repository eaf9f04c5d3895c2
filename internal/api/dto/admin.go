package dto

import (
	"github.com/vendrahq/vendra/internal/domain/admin"
)

// ListEntitiesResponse enumerates the browsable entities
type ListEntitiesResponse struct {
	Items []admin.EntityInfo `json:"items"`
}

// BrowseEntityResponse is one page of records from a browsable entity
type BrowseEntityResponse struct {
	Entity  string           `json:"entity"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Records []map[string]any `json:"records"`
}
