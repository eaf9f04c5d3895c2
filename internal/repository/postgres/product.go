package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/product"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type productRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewProductRepository(db *postgres.DB, logger *logger.Logger) product.Repository {
	return &productRepository{db: db, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id,
			tenant_id,
			sku,
			barcode,
			name,
			description,
			category,
			supplier_id,
			unit,
			cost_price,
			sale_price,
			stock_quantity,
			min_stock,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:sku,
			:barcode,
			:name,
			:description,
			:category,
			:supplier_id,
			:unit,
			:cost_price,
			:sale_price,
			:stock_quantity,
			:min_stock,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating product",
		"product_id", p.ID,
		"tenant_id", p.TenantID,
		"sku", p.SKU,
	)

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		r.logger.Errorw("failed to create product", "error", err, "product_id", p.ID)
		return ierr.WithError(err).
			WithHint("Failed to create product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	query := `
		SELECT * FROM products
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
		r.logger.Errorw("failed to get product", "error", err, "product_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve product").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", id).
			WithReportableDetails(map[string]any{"product_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var p product.Product
	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read product").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter *types.ProductFilter) ([]*product.Product, error) {
	query := `
		SELECT * FROM products
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
		if filter.Category != "" {
			query += ` AND category = :category`
			params["category"] = filter.Category
		}
		if filter.SupplierID != "" {
			query += ` AND supplier_id = :supplier_id`
			params["supplier_id"] = filter.SupplierID
		}
		if filter.Search != "" {
			query += ` AND (name ILIKE :search OR sku ILIKE :search OR barcode = :exact_search)`
			params["search"] = "%" + filter.Search + "%"
			params["exact_search"] = filter.Search
		}
		if filter.LowStock {
			query += ` AND stock_quantity <= min_stock`
		}
	}
	query += `
		ORDER BY name ASC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read product").
				Mark(ierr.ErrDatabase)
		}
		products = append(products, &p)
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter *types.ProductFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM products
		WHERE tenant_id = :tenant_id
		AND status = :status
	`
	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
	}

	if filter != nil && filter.Category != "" {
		query += ` AND category = :category`
		params["category"] = filter.Category
	}
	if filter != nil && filter.LowStock {
		query += ` AND stock_quantity <= min_stock`
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return 0, ierr.WithError(err).
			WithHint("Failed to count products").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to count products").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET sku = :sku,
		barcode = :barcode,
		name = :name,
		description = :description,
		category = :category,
		supplier_id = :supplier_id,
		unit = :unit,
		cost_price = :cost_price,
		sale_price = :sale_price,
		stock_quantity = :stock_quantity,
		min_stock = :min_stock,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating product",
		"product_id", p.ID,
		"tenant_id", p.TenantID,
	)

	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		r.logger.Errorw("failed to update product", "error", err, "product_id", p.ID)
		return ierr.WithError(err).
			WithHint("Failed to update product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE products
		SET status = :status,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("deleting product", "product_id", id)

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"status":     types.StatusDeleted,
		"updated_at": time.Now().UTC(),
		"updated_by": types.GetUserID(ctx),
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to delete product", "error", err, "product_id", id)
		return ierr.WithError(err).
			WithHint("Failed to delete product").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// AdjustStock applies the delta atomically and relies on the row predicate
// to refuse adjustments that would leave negative stock.
func (r *productRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + :delta,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status != :deleted_status
		AND stock_quantity + :delta >= 0
	`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":             id,
		"delta":          delta,
		"updated_at":     time.Now().UTC(),
		"updated_by":     types.GetUserID(ctx),
		"tenant_id":      types.GetTenantID(ctx),
		"deleted_status": types.StatusDeleted,
	})
	if err != nil {
		r.logger.Errorw("failed to adjust stock", "error", err, "product_id", id, "delta", delta)
		return ierr.WithError(err).
			WithHint("Failed to adjust product stock").
			Mark(ierr.ErrDatabase)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to adjust product stock").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewError("stock adjustment rejected").
			WithHint("The product does not exist or the adjustment would leave negative stock").
			WithReportableDetails(map[string]any{
				"product_id": id,
				"delta":      delta,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	r.logger.Debugw("adjusted product stock", "product_id", id, "delta", delta)
	return nil
}
