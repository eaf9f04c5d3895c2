package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/vendrahq/vendra/internal/domain/admin"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

// entityTables is the allowlist the admin browser may touch. Table names
// are interpolated into SQL, so nothing outside this map is ever queried.
var entityTables = map[string]string{
	"plans":            "plans",
	"subscriptions":    "subscriptions",
	"products":         "products",
	"suppliers":        "suppliers",
	"customers":        "customers",
	"purchase_orders":  "purchase_orders",
	"sales":            "sales",
	"inventory_counts": "inventory_counts",
	"campaigns":        "campaigns",
}

type adminRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewAdminRepository(db *postgres.DB, logger *logger.Logger) admin.Repository {
	return &adminRepository{db: db, logger: logger}
}

func (r *adminRepository) Entities() []admin.EntityInfo {
	entities := make([]admin.EntityInfo, 0, len(entityTables))
	for name, table := range entityTables {
		entities = append(entities, admin.EntityInfo{Name: name, Table: table})
	}
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Name < entities[j].Name
	})
	return entities
}

func (r *adminRepository) table(entity string) (string, error) {
	table, ok := entityTables[entity]
	if !ok {
		return "", ierr.NewError("unknown entity").
			WithHintf("Entity %s is not browsable", entity).
			WithReportableDetails(map[string]any{"entity": entity}).
			Mark(ierr.ErrNotFound)
	}
	return table, nil
}

func (r *adminRepository) Count(ctx context.Context, entity string) (int, error) {
	table, err := r.table(entity)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE tenant_id = $1`, table)

	var count int
	if err := r.db.GetContext(ctx, &count, query, types.GetTenantID(ctx)); err != nil {
		r.logger.Errorw("failed to count entity records", "error", err, "entity", entity)
		return 0, ierr.WithError(err).
			WithHint("Failed to count records").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *adminRepository) Records(ctx context.Context, entity string, limit, offset int) ([]map[string]any, error) {
	table, err := r.table(entity)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT * FROM %s
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, table)

	rows, err := r.db.GetQuerier(ctx).QueryxContext(ctx, query, types.GetTenantID(ctx), limit, offset)
	if err != nil {
		r.logger.Errorw("failed to browse entity records", "error", err, "entity", entity)
		return nil, ierr.WithError(err).
			WithHint("Failed to browse records").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var records []map[string]any
	for rows.Next() {
		record := map[string]any{}
		if err := rows.MapScan(record); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read record").
				Mark(ierr.ErrDatabase)
		}
		for k, v := range record {
			if b, ok := v.([]byte); ok {
				record[k] = string(b)
			}
		}
		records = append(records, record)
	}
	return records, nil
}
