package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/inventorycount"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type inventoryCountRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInventoryCountRepository(db *postgres.DB, logger *logger.Logger) inventorycount.Repository {
	return &inventoryCountRepository{db: db, logger: logger}
}

func (r *inventoryCountRepository) Create(ctx context.Context, c *inventorycount.InventoryCount) error {
	query := `
		INSERT INTO inventory_counts (
			id,
			tenant_id,
			count_status,
			notes,
			started_at,
			closed_at,
			adjustments_applied,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:count_status,
			:notes,
			:started_at,
			:closed_at,
			:adjustments_applied,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating inventory count",
		"inventory_count_id", c.ID,
		"tenant_id", c.TenantID,
		"lines", len(c.Lines),
	)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		r.logger.Errorw("failed to create inventory count", "error", err, "inventory_count_id", c.ID)
		return ierr.WithError(err).
			WithHint("Failed to create inventory count").
			Mark(ierr.ErrDatabase)
	}

	for _, line := range c.Lines {
		if err := r.createLine(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *inventoryCountRepository) createLine(ctx context.Context, line *inventorycount.Line) error {
	query := `
		INSERT INTO inventory_count_lines (
			id,
			tenant_id,
			inventory_count_id,
			product_id,
			expected_quantity,
			counted_quantity,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:inventory_count_id,
			:product_id,
			:expected_quantity,
			:counted_quantity,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, line)
	if err != nil {
		r.logger.Errorw("failed to create inventory count line",
			"error", err,
			"inventory_count_id", line.InventoryCountID,
			"product_id", line.ProductID)
		return ierr.WithError(err).
			WithHint("Failed to create inventory count line").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *inventoryCountRepository) Get(ctx context.Context, id string) (*inventorycount.InventoryCount, error) {
	query := `
		SELECT * FROM inventory_counts
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status != :deleted_status
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id":             id,
		"tenant_id":      types.GetTenantID(ctx),
		"deleted_status": types.StatusDeleted,
	})
	if err != nil {
		r.logger.Errorw("failed to get inventory count", "error", err, "inventory_count_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve inventory count").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("inventory count not found").
			WithHintf("Inventory count with ID %s was not found", id).
			WithReportableDetails(map[string]any{"inventory_count_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var c inventorycount.InventoryCount
	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read inventory count").
			Mark(ierr.ErrDatabase)
	}

	lines, err := r.listLines(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Lines = lines
	return &c, nil
}

func (r *inventoryCountRepository) listLines(ctx context.Context, countID string) ([]*inventorycount.Line, error) {
	query := `
		SELECT * FROM inventory_count_lines
		WHERE inventory_count_id = :inventory_count_id
		AND tenant_id = :tenant_id
		ORDER BY created_at ASC
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"inventory_count_id": countID,
		"tenant_id":          types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to list inventory count lines", "error", err, "inventory_count_id", countID)
		return nil, ierr.WithError(err).
			WithHint("Failed to list inventory count lines").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var lines []*inventorycount.Line
	for rows.Next() {
		var line inventorycount.Line
		if err := rows.StructScan(&line); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read inventory count line").
				Mark(ierr.ErrDatabase)
		}
		lines = append(lines, &line)
	}
	return lines, nil
}

func (r *inventoryCountRepository) List(ctx context.Context, filter *types.InventoryCountFilter) ([]*inventorycount.InventoryCount, error) {
	query := `
		SELECT * FROM inventory_counts
		WHERE tenant_id = :tenant_id
		AND status = :status
	`
	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
		"offset":    filter.GetOffset(),
	}

	if filter != nil && filter.CountStatus != "" {
		query += ` AND count_status = :count_status`
		params["count_status"] = filter.CountStatus
	}
	query += `
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list inventory counts", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list inventory counts").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var counts []*inventorycount.InventoryCount
	for rows.Next() {
		var c inventorycount.InventoryCount
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read inventory count").
				Mark(ierr.ErrDatabase)
		}
		counts = append(counts, &c)
	}
	return counts, nil
}

func (r *inventoryCountRepository) Update(ctx context.Context, c *inventorycount.InventoryCount) error {
	query := `
		UPDATE inventory_counts
		SET count_status = :count_status,
		notes = :notes,
		closed_at = :closed_at,
		adjustments_applied = :adjustments_applied,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating inventory count",
		"inventory_count_id", c.ID,
		"tenant_id", c.TenantID,
		"count_status", c.CountStatus,
	)

	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		r.logger.Errorw("failed to update inventory count", "error", err, "inventory_count_id", c.ID)
		return ierr.WithError(err).
			WithHint("Failed to update inventory count").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *inventoryCountRepository) UpdateLine(ctx context.Context, line *inventorycount.Line) error {
	query := `
		UPDATE inventory_count_lines
		SET counted_quantity = :counted_quantity,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	line.UpdatedAt = time.Now().UTC()
	line.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, line)
	if err != nil {
		r.logger.Errorw("failed to update inventory count line",
			"error", err,
			"line_id", line.ID,
			"inventory_count_id", line.InventoryCountID)
		return ierr.WithError(err).
			WithHint("Failed to update inventory count line").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
