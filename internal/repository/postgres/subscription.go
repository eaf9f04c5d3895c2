package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/subscription"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type subscriptionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSubscriptionRepository(db *postgres.DB, logger *logger.Logger) subscription.Repository {
	return &subscriptionRepository{db: db, logger: logger}
}

func (r *subscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id,
			tenant_id,
			plan_id,
			plan_name,
			amount_cents,
			currency,
			billing_period,
			current_period_start,
			current_period_end,
			provider_subscription_id,
			subscription_status,
			cancelled_at,
			metadata,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:plan_id,
			:plan_name,
			:amount_cents,
			:currency,
			:billing_period,
			:current_period_start,
			:current_period_end,
			:provider_subscription_id,
			:subscription_status,
			:cancelled_at,
			:metadata,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating subscription",
		"subscription_id", s.ID,
		"tenant_id", s.TenantID,
		"plan_id", s.PlanID,
	)

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "subscription_id", s.ID)
		return ierr.WithError(err).
			WithHint("Failed to create subscription").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *subscriptionRepository) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	query := `
		SELECT * FROM subscriptions
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
		r.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve subscription").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("subscription not found").
			WithHintf("Subscription with ID %s was not found", id).
			WithReportableDetails(map[string]any{"subscription_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var s subscription.Subscription
	if err := rows.StructScan(&s); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read subscription").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *subscriptionRepository) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	query := `
		SELECT * FROM subscriptions
		WHERE tenant_id = :tenant_id
		AND status = :status
	`
	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
		"offset":    filter.GetOffset(),
	}

	if filter != nil && filter.SubscriptionStatus != "" {
		query += ` AND subscription_status = :subscription_status`
		params["subscription_status"] = filter.SubscriptionStatus
	}
	if filter != nil && filter.PlanID != "" {
		query += ` AND plan_id = :plan_id`
		params["plan_id"] = filter.PlanID
	}
	query += `
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list subscriptions").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var subs []*subscription.Subscription
	for rows.Next() {
		var s subscription.Subscription
		if err := rows.StructScan(&s); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read subscription").
				Mark(ierr.ErrDatabase)
		}
		subs = append(subs, &s)
	}
	return subs, nil
}

func (r *subscriptionRepository) ListByStatus(ctx context.Context, status types.SubscriptionStatus) ([]*subscription.Subscription, error) {
	query := `
		SELECT * FROM subscriptions
		WHERE tenant_id = :tenant_id
		AND status = :status
		AND subscription_status = :subscription_status
		ORDER BY created_at DESC
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"tenant_id":           types.GetTenantID(ctx),
		"status":              types.StatusPublished,
		"subscription_status": status,
	})
	if err != nil {
		r.logger.Errorw("failed to list subscriptions by status", "error", err, "subscription_status", status)
		return nil, ierr.WithError(err).
			WithHint("Failed to list subscriptions").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var subs []*subscription.Subscription
	for rows.Next() {
		var s subscription.Subscription
		if err := rows.StructScan(&s); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read subscription").
				Mark(ierr.ErrDatabase)
		}
		subs = append(subs, &s)
	}
	return subs, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	query := `
		UPDATE subscriptions
		SET plan_id = :plan_id,
		plan_name = :plan_name,
		amount_cents = :amount_cents,
		currency = :currency,
		billing_period = :billing_period,
		current_period_start = :current_period_start,
		current_period_end = :current_period_end,
		provider_subscription_id = :provider_subscription_id,
		subscription_status = :subscription_status,
		cancelled_at = :cancelled_at,
		metadata = :metadata,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating subscription",
		"subscription_id", s.ID,
		"tenant_id", s.TenantID,
		"subscription_status", s.SubscriptionStatus,
	)

	s.UpdatedAt = time.Now().UTC()
	s.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		r.logger.Errorw("failed to update subscription", "error", err, "subscription_id", s.ID)
		return ierr.WithError(err).
			WithHint("Failed to update subscription").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
