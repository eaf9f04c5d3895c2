package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/plan"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type planRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPlanRepository(db *postgres.DB, logger *logger.Logger) plan.Repository {
	return &planRepository{db: db, logger: logger}
}

func (r *planRepository) Create(ctx context.Context, p *plan.Plan) error {
	query := `
		INSERT INTO plans (
			id,
			tenant_id,
			name,
			lookup_key,
			description,
			price,
			price_quarterly,
			price_biannual,
			price_annual,
			currency,
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
			:lookup_key,
			:description,
			:price,
			:price_quarterly,
			:price_biannual,
			:price_annual,
			:currency,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating plan",
		"plan_id", p.ID,
		"tenant_id", p.TenantID,
	)

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "plan_id", p.ID)
		return ierr.WithError(err).
			WithHint("Failed to create plan").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *planRepository) Get(ctx context.Context, id string) (*plan.Plan, error) {
	query := `
		SELECT * FROM plans
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
		r.logger.Errorw("failed to get plan", "error", err, "plan_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve plan").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("plan not found").
			WithHintf("Plan with ID %s was not found", id).
			WithReportableDetails(map[string]any{"plan_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var p plan.Plan
	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read plan").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *planRepository) List(ctx context.Context, filter *types.PlanFilter) ([]*plan.Plan, error) {
	query := `
		SELECT * FROM plans
		WHERE tenant_id = :tenant_id
		AND status = :status
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
		"offset":    filter.GetOffset(),
	})
	if err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list plans").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var plans []*plan.Plan
	for rows.Next() {
		var p plan.Plan
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read plan").
				Mark(ierr.ErrDatabase)
		}
		plans = append(plans, &p)
	}
	return plans, nil
}

func (r *planRepository) Count(ctx context.Context, filter *types.PlanFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM plans
		WHERE tenant_id = :tenant_id
		AND status = :status
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
	})
	if err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return 0, ierr.WithError(err).
			WithHint("Failed to count plans").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to count plans").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

func (r *planRepository) Update(ctx context.Context, p *plan.Plan) error {
	query := `
		UPDATE plans
		SET name = :name,
		lookup_key = :lookup_key,
		description = :description,
		price = :price,
		price_quarterly = :price_quarterly,
		price_biannual = :price_biannual,
		price_annual = :price_annual,
		currency = :currency,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating plan",
		"plan_id", p.ID,
		"tenant_id", p.TenantID,
	)

	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		r.logger.Errorw("failed to update plan", "error", err, "plan_id", p.ID)
		return ierr.WithError(err).
			WithHint("Failed to update plan").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *planRepository) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE plans
		SET status = :status,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("deleting plan", "plan_id", id)

	_, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         id,
		"status":     types.StatusDeleted,
		"updated_at": time.Now().UTC(),
		"updated_by": types.GetUserID(ctx),
		"tenant_id":  types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to delete plan", "error", err, "plan_id", id)
		return ierr.WithError(err).
			WithHint("Failed to delete plan").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
