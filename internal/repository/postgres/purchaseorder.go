package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/purchaseorder"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type purchaseOrderRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPurchaseOrderRepository(db *postgres.DB, logger *logger.Logger) purchaseorder.Repository {
	return &purchaseOrderRepository{db: db, logger: logger}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (
			id,
			tenant_id,
			number,
			supplier_id,
			po_status,
			expected_at,
			received_at,
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
			:supplier_id,
			:po_status,
			:expected_at,
			:received_at,
			:total_amount,
			:notes,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating purchase order",
		"purchase_order_id", po.ID,
		"tenant_id", po.TenantID,
		"number", po.Number,
	)

	_, err := r.db.NamedExecContext(ctx, query, po)
	if err != nil {
		r.logger.Errorw("failed to create purchase order", "error", err, "purchase_order_id", po.ID)
		return ierr.WithError(err).
			WithHint("Failed to create purchase order").
			Mark(ierr.ErrDatabase)
	}

	for _, li := range po.LineItems {
		if err := r.createLineItem(ctx, li); err != nil {
			return err
		}
	}
	return nil
}

func (r *purchaseOrderRepository) createLineItem(ctx context.Context, li *purchaseorder.LineItem) error {
	query := `
		INSERT INTO purchase_order_items (
			id,
			tenant_id,
			purchase_order_id,
			product_id,
			description,
			quantity,
			unit_cost,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:purchase_order_id,
			:product_id,
			:description,
			:quantity,
			:unit_cost,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, li)
	if err != nil {
		r.logger.Errorw("failed to create purchase order item",
			"error", err,
			"purchase_order_id", li.PurchaseOrderID,
			"product_id", li.ProductID)
		return ierr.WithError(err).
			WithHint("Failed to create purchase order item").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *purchaseOrderRepository) Get(ctx context.Context, id string) (*purchaseorder.PurchaseOrder, error) {
	query := `
		SELECT * FROM purchase_orders
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
		r.logger.Errorw("failed to get purchase order", "error", err, "purchase_order_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve purchase order").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("purchase order not found").
			WithHintf("Purchase order with ID %s was not found", id).
			WithReportableDetails(map[string]any{"purchase_order_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var po purchaseorder.PurchaseOrder
	if err := rows.StructScan(&po); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read purchase order").
			Mark(ierr.ErrDatabase)
	}

	items, err := r.listLineItems(ctx, po.ID)
	if err != nil {
		return nil, err
	}
	po.LineItems = items
	return &po, nil
}

func (r *purchaseOrderRepository) listLineItems(ctx context.Context, poID string) ([]*purchaseorder.LineItem, error) {
	query := `
		SELECT * FROM purchase_order_items
		WHERE purchase_order_id = :purchase_order_id
		AND tenant_id = :tenant_id
		ORDER BY created_at ASC
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"purchase_order_id": poID,
		"tenant_id":         types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to list purchase order items", "error", err, "purchase_order_id", poID)
		return nil, ierr.WithError(err).
			WithHint("Failed to list purchase order items").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var items []*purchaseorder.LineItem
	for rows.Next() {
		var li purchaseorder.LineItem
		if err := rows.StructScan(&li); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read purchase order item").
				Mark(ierr.ErrDatabase)
		}
		items = append(items, &li)
	}
	return items, nil
}

func (r *purchaseOrderRepository) List(ctx context.Context, filter *types.PurchaseOrderFilter) ([]*purchaseorder.PurchaseOrder, error) {
	query := `
		SELECT * FROM purchase_orders
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
		if filter.SupplierID != "" {
			query += ` AND supplier_id = :supplier_id`
			params["supplier_id"] = filter.SupplierID
		}
		if filter.PurchaseOrderStatus != "" {
			query += ` AND po_status = :po_status`
			params["po_status"] = filter.PurchaseOrderStatus
		}
	}
	query += `
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list purchase orders", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list purchase orders").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var orders []*purchaseorder.PurchaseOrder
	for rows.Next() {
		var po purchaseorder.PurchaseOrder
		if err := rows.StructScan(&po); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read purchase order").
				Mark(ierr.ErrDatabase)
		}
		orders = append(orders, &po)
	}
	return orders, nil
}

func (r *purchaseOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET supplier_id = :supplier_id,
		po_status = :po_status,
		expected_at = :expected_at,
		received_at = :received_at,
		total_amount = :total_amount,
		notes = :notes,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating purchase order",
		"purchase_order_id", po.ID,
		"tenant_id", po.TenantID,
		"po_status", po.POStatus,
	)

	po.UpdatedAt = time.Now().UTC()
	po.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, po)
	if err != nil {
		r.logger.Errorw("failed to update purchase order", "error", err, "purchase_order_id", po.ID)
		return ierr.WithError(err).
			WithHint("Failed to update purchase order").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
