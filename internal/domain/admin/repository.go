package admin

import "context"

// EntityInfo describes one browsable entity in the admin registry
type EntityInfo struct {
	Name  string `json:"name"`
	Table string `json:"table"`
}

// Repository provides read-only generic access to registered entities for
// the admin browser. Implementations must restrict queries to an
// allowlisted set of tables.
type Repository interface {
	Entities() []EntityInfo
	Count(ctx context.Context, entity string) (int, error)
	Records(ctx context.Context, entity string, limit, offset int) ([]map[string]any, error)
}
