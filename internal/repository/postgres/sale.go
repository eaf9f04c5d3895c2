package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/sale"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type saleRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSaleRepository(db *postgres.DB, logger *logger.Logger) sale.Repository {
	return &saleRepository{db: db, logger: logger}
}

func (r *saleRepository) Create(ctx context.Context, s *sale.Sale) error {
	query := `
		INSERT INTO sales (
			id,
			tenant_id,
			number,
			customer_id,
			payment_method,
			sale_status,
			subtotal,
			discount_amount,
			total_amount,
			notes,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:number,
			:customer_id,
			:payment_method,
			:sale_status,
			:subtotal,
			:discount_amount,
			:total_amount,
			:notes,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating sale",
		"sale_id", s.ID,
		"tenant_id", s.TenantID,
		"number", s.Number,
	)

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		r.logger.Errorw("failed to create sale", "error", err, "sale_id", s.ID)
		return ierr.WithError(err).
			WithHint("Failed to create sale").
			Mark(ierr.ErrDatabase)
	}

	for _, li := range s.LineItems {
		if err := r.createLineItem(ctx, li); err != nil {
			return err
		}
	}
	return nil
}

func (r *saleRepository) createLineItem(ctx context.Context, li *sale.LineItem) error {
	query := `
		INSERT INTO sale_items (
			id,
			tenant_id,
			sale_id,
			product_id,
			description,
			quantity,
			unit_price,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:sale_id,
			:product_id,
			:description,
			:quantity,
			:unit_price,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, li)
	if err != nil {
		r.logger.Errorw("failed to create sale item",
			"error", err,
			"sale_id", li.SaleID,
			"product_id", li.ProductID)
		return ierr.WithError(err).
			WithHint("Failed to create sale item").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *saleRepository) Get(ctx context.Context, id string) (*sale.Sale, error) {
	query := `
		SELECT * FROM sales
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
		r.logger.Errorw("failed to get sale", "error", err, "sale_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve sale").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("sale not found").
			WithHintf("Sale with ID %s was not found", id).
			WithReportableDetails(map[string]any{"sale_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var s sale.Sale
	if err := rows.StructScan(&s); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read sale").
			Mark(ierr.ErrDatabase)
	}

	items, err := r.listLineItems(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.LineItems = items
	return &s, nil
}

func (r *saleRepository) listLineItems(ctx context.Context, saleID string) ([]*sale.LineItem, error) {
	query := `
		SELECT * FROM sale_items
		WHERE sale_id = :sale_id
		AND tenant_id = :tenant_id
		ORDER BY created_at ASC
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"sale_id":   saleID,
		"tenant_id": types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to list sale items", "error", err, "sale_id", saleID)
		return nil, ierr.WithError(err).
			WithHint("Failed to list sale items").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var items []*sale.LineItem
	for rows.Next() {
		var li sale.LineItem
		if err := rows.StructScan(&li); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read sale item").
				Mark(ierr.ErrDatabase)
		}
		items = append(items, &li)
	}
	return items, nil
}

func (r *saleRepository) List(ctx context.Context, filter *types.SaleFilter) ([]*sale.Sale, error) {
	query := `
		SELECT * FROM sales
		WHERE tenant_id = :tenant_id
		AND status = :status
	`
	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
		"offset":    filter.GetOffset(),
	}

	if filter != nil {
		if filter.CustomerID != "" {
			query += ` AND customer_id = :customer_id`
			params["customer_id"] = filter.CustomerID
		}
		if filter.PaymentMethod != "" {
			query += ` AND payment_method = :payment_method`
			params["payment_method"] = filter.PaymentMethod
		}
		if filter.SaleStatus != "" {
			query += ` AND sale_status = :sale_status`
			params["sale_status"] = filter.SaleStatus
		}
		if filter.TimeRangeFilter != nil {
			if filter.StartTime != nil {
				query += ` AND created_at >= :start_time`
				params["start_time"] = filter.StartTime
			}
			if filter.EndTime != nil {
				query += ` AND created_at <= :end_time`
				params["end_time"] = filter.EndTime
			}
		}
	}
	query += `
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list sales", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list sales").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var sales []*sale.Sale
	for rows.Next() {
		var s sale.Sale
		if err := rows.StructScan(&s); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read sale").
				Mark(ierr.ErrDatabase)
		}
		sales = append(sales, &s)
	}
	return sales, nil
}

func (r *saleRepository) Update(ctx context.Context, s *sale.Sale) error {
	query := `
		UPDATE sales
		SET customer_id = :customer_id,
		payment_method = :payment_method,
		sale_status = :sale_status,
		subtotal = :subtotal,
		discount_amount = :discount_amount,
		total_amount = :total_amount,
		notes = :notes,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating sale",
		"sale_id", s.ID,
		"tenant_id", s.TenantID,
		"sale_status", s.SaleStatus,
	)

	s.UpdatedAt = time.Now().UTC()
	s.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		r.logger.Errorw("failed to update sale", "error", err, "sale_id", s.ID)
		return ierr.WithError(err).
			WithHint("Failed to update sale").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// ListByDay loads the completed sales for the UTC day containing the given
// timestamp, line items included, for the daily summary rollup.
func (r *saleRepository) ListByDay(ctx context.Context, day time.Time) ([]*sale.Sale, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	query := `
		SELECT * FROM sales
		WHERE tenant_id = :tenant_id
		AND status = :status
		AND sale_status = :sale_status
		AND created_at >= :day_start
		AND created_at < :day_end
		ORDER BY created_at ASC
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id":   types.GetTenantID(ctx),
		"status":      types.StatusPublished,
		"sale_status": types.SaleStatusCompleted,
		"day_start":   dayStart,
		"day_end":     dayEnd,
	})
	if err != nil {
		r.logger.Errorw("failed to list sales by day", "error", err, "day", dayStart)
		return nil, ierr.WithError(err).
			WithHint("Failed to list sales for the day").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var sales []*sale.Sale
	for rows.Next() {
		var s sale.Sale
		if err := rows.StructScan(&s); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read sale").
				Mark(ierr.ErrDatabase)
		}
		sales = append(sales, &s)
	}
	return sales, nil
}
