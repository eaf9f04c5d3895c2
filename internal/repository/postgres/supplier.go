package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/supplier"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type supplierRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSupplierRepository(db *postgres.DB, logger *logger.Logger) supplier.Repository {
	return &supplierRepository{db: db, logger: logger}
}

func (r *supplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	query := `
		INSERT INTO suppliers (
			id,
			tenant_id,
			name,
			doc_number,
			email,
			phone,
			address,
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
			:name,
			:doc_number,
			:email,
			:phone,
			:address,
			:notes,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating supplier",
		"supplier_id", s.ID,
		"tenant_id", s.TenantID,
	)

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		r.logger.Errorw("failed to create supplier", "error", err, "supplier_id", s.ID)
		return ierr.WithError(err).
			WithHint("Failed to create supplier").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *supplierRepository) Get(ctx context.Context, id string) (*supplier.Supplier, error) {
	query := `
		SELECT * FROM suppliers
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
		r.logger.Errorw("failed to get supplier", "error", err, "supplier_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve supplier").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("supplier not found").
			WithHintf("Supplier with ID %s was not found", id).
			WithReportableDetails(map[string]any{"supplier_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var s supplier.Supplier
	if err := rows.StructScan(&s); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read supplier").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *supplierRepository) List(ctx context.Context, filter *types.SupplierFilter) ([]*supplier.Supplier, error) {
	query := `
		SELECT * FROM suppliers
		WHERE tenant_id = :tenant_id
		AND status = :status
	`
	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
		"offset":    filter.GetOffset(),
	}

	if filter != nil && filter.Search != "" {
		query += ` AND (name ILIKE :search OR doc_number ILIKE :search)`
		params["search"] = "%" + filter.Search + "%"
	}
	query += `
		ORDER BY name ASC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list suppliers", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list suppliers").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var suppliers []*supplier.Supplier
	for rows.Next() {
		var s supplier.Supplier
		if err := rows.StructScan(&s); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read supplier").
				Mark(ierr.ErrDatabase)
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, nil
}

func (r *supplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = :name,
		doc_number = :doc_number,
		email = :email,
		phone = :phone,
		address = :address,
		notes = :notes,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating supplier",
		"supplier_id", s.ID,
		"tenant_id", s.TenantID,
	)

	s.UpdatedAt = time.Now().UTC()
	s.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		r.logger.Errorw("failed to update supplier", "error", err, "supplier_id", s.ID)
		return ierr.WithError(err).
			WithHint("Failed to update supplier").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *supplierRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE suppliers
		SET status = :status,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("deleting supplier", "supplier_id", id)

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"status":     types.StatusDeleted,
		"updated_at": time.Now().UTC(),
		"updated_by": types.GetUserID(ctx),
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to delete supplier", "error", err, "supplier_id", id)
		return ierr.WithError(err).
			WithHint("Failed to delete supplier").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
