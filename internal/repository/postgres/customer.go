package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/customer"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type customerRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCustomerRepository(db *postgres.DB, logger *logger.Logger) customer.Repository {
	return &customerRepository{db: db, logger: logger}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (
			id,
			tenant_id,
			name,
			email,
			phone,
			tag,
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
			:email,
			:phone,
			:tag,
			:notes,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating customer",
		"customer_id", c.ID,
		"tenant_id", c.TenantID,
	)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		r.logger.Errorw("failed to create customer", "error", err, "customer_id", c.ID)
		return ierr.WithError(err).
			WithHint("Failed to create customer").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	query := `
		SELECT * FROM customers
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
		r.logger.Errorw("failed to get customer", "error", err, "customer_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve customer").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("customer not found").
			WithHintf("Customer with ID %s was not found", id).
			WithReportableDetails(map[string]any{"customer_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var c customer.Customer
	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read customer").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context, filter *types.CustomerFilter) ([]*customer.Customer, error) {
	query := `
		SELECT * FROM customers
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
		if filter.Search != "" {
			query += ` AND (name ILIKE :search OR phone ILIKE :search OR email ILIKE :search)`
			params["search"] = "%" + filter.Search + "%"
		}
		if filter.Tag != "" {
			query += ` AND tag = :tag`
			params["tag"] = filter.Tag
		}
	}
	query += `
		ORDER BY name ASC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list customers", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list customers").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read customer").
				Mark(ierr.ErrDatabase)
		}
		customers = append(customers, &c)
	}
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET name = :name,
		email = :email,
		phone = :phone,
		tag = :tag,
		notes = :notes,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating customer",
		"customer_id", c.ID,
		"tenant_id", c.TenantID,
	)

	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		r.logger.Errorw("failed to update customer", "error", err, "customer_id", c.ID)
		return ierr.WithError(err).
			WithHint("Failed to update customer").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE customers
		SET status = :status,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("deleting customer", "customer_id", id)

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"status":     types.StatusDeleted,
		"updated_at": time.Now().UTC(),
		"updated_by": types.GetUserID(ctx),
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to delete customer", "error", err, "customer_id", id)
		return ierr.WithError(err).
			WithHint("Failed to delete customer").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
