package postgres

import (
	"context"
	"time"

	"github.com/vendrahq/vendra/internal/domain/campaign"
	ierr "github.com/vendrahq/vendra/internal/errors"
	"github.com/vendrahq/vendra/internal/logger"
	"github.com/vendrahq/vendra/internal/postgres"
	"github.com/vendrahq/vendra/internal/types"
)

type campaignRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCampaignRepository(db *postgres.DB, logger *logger.Logger) campaign.Repository {
	return &campaignRepository{db: db, logger: logger}
}

func (r *campaignRepository) Create(ctx context.Context, c *campaign.Campaign) error {
	query := `
		INSERT INTO campaigns (
			id,
			tenant_id,
			name,
			message_template,
			audience_tag,
			scheduled_at,
			campaign_status,
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
			:message_template,
			:audience_tag,
			:scheduled_at,
			:campaign_status,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating campaign",
		"campaign_id", c.ID,
		"tenant_id", c.TenantID,
	)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		r.logger.Errorw("failed to create campaign", "error", err, "campaign_id", c.ID)
		return ierr.WithError(err).
			WithHint("Failed to create campaign").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *campaignRepository) Get(ctx context.Context, id string) (*campaign.Campaign, error) {
	query := `
		SELECT * FROM campaigns
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
		r.logger.Errorw("failed to get campaign", "error", err, "campaign_id", id)
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve campaign").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("campaign not found").
			WithHintf("Campaign with ID %s was not found", id).
			WithReportableDetails(map[string]any{"campaign_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var c campaign.Campaign
	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read campaign").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *campaignRepository) List(ctx context.Context, filter *types.CampaignFilter) ([]*campaign.Campaign, error) {
	query := `
		SELECT * FROM campaigns
		WHERE tenant_id = :tenant_id
		AND status = :status
	`
	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
		"offset":    filter.GetOffset(),
	}

	if filter != nil && filter.CampaignStatus != "" {
		query += ` AND campaign_status = :campaign_status`
		params["campaign_status"] = filter.CampaignStatus
	}
	query += `
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list campaigns", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list campaigns").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var campaigns []*campaign.Campaign
	for rows.Next() {
		var c campaign.Campaign
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read campaign").
				Mark(ierr.ErrDatabase)
		}
		campaigns = append(campaigns, &c)
	}
	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, c *campaign.Campaign) error {
	query := `
		UPDATE campaigns
		SET name = :name,
		message_template = :message_template,
		audience_tag = :audience_tag,
		scheduled_at = :scheduled_at,
		campaign_status = :campaign_status,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	r.logger.Debugw("updating campaign",
		"campaign_id", c.ID,
		"tenant_id", c.TenantID,
		"campaign_status", c.CampaignStatus,
	)

	c.UpdatedAt = time.Now().UTC()
	c.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		r.logger.Errorw("failed to update campaign", "error", err, "campaign_id", c.ID)
		return ierr.WithError(err).
			WithHint("Failed to update campaign").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

// ListDue is intentionally not scoped to a tenant: the dispatch cron runs
// once across all tenants and scopes work per campaign afterwards.
func (r *campaignRepository) ListDue(ctx context.Context, now time.Time) ([]*campaign.Campaign, error) {
	query := `
		SELECT * FROM campaigns
		WHERE status = :status
		AND campaign_status = :campaign_status
		AND scheduled_at IS NOT NULL
		AND scheduled_at <= :now
		ORDER BY scheduled_at ASC
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"status":          types.StatusPublished,
		"campaign_status": types.CampaignStatusScheduled,
		"now":             now,
	})
	if err != nil {
		r.logger.Errorw("failed to list due campaigns", "error", err)
		return nil, ierr.WithError(err).
			WithHint("Failed to list due campaigns").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var campaigns []*campaign.Campaign
	for rows.Next() {
		var c campaign.Campaign
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read campaign").
				Mark(ierr.ErrDatabase)
		}
		campaigns = append(campaigns, &c)
	}
	return campaigns, nil
}

type messageRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewMessageRepository(db *postgres.DB, logger *logger.Logger) campaign.MessageRepository {
	return &messageRepository{db: db, logger: logger}
}

func (r *messageRepository) CreateBulk(ctx context.Context, messages []*campaign.Message) error {
	if len(messages) == 0 {
		return nil
	}

	query := `
		INSERT INTO campaign_messages (
			id,
			tenant_id,
			campaign_id,
			customer_id,
			phone,
			body,
			message_status,
			failure_reason,
			attempts,
			sent_at,
			status,
			created_at,
			updated_at,
			created_by,
			updated_by
		)
		VALUES (
			:id,
			:tenant_id,
			:campaign_id,
			:customer_id,
			:phone,
			:body,
			:message_status,
			:failure_reason,
			:attempts,
			:sent_at,
			:status,
			:created_at,
			:updated_at,
			:created_by,
			:updated_by
		)
	`

	r.logger.Debugw("creating campaign messages",
		"campaign_id", messages[0].CampaignID,
		"count", len(messages),
	)

	_, err := r.db.NamedExecContext(ctx, query, messages)
	if err != nil {
		r.logger.Errorw("failed to create campaign messages",
			"error", err,
			"campaign_id", messages[0].CampaignID)
		return ierr.WithError(err).
			WithHint("Failed to create campaign messages").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *messageRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*campaign.Message, error) {
	return r.list(ctx, campaignID, "")
}

func (r *messageRepository) ListPendingByCampaign(ctx context.Context, campaignID string) ([]*campaign.Message, error) {
	return r.list(ctx, campaignID, types.MessageStatusPending)
}

func (r *messageRepository) list(ctx context.Context, campaignID string, messageStatus types.MessageStatus) ([]*campaign.Message, error) {
	query := `
		SELECT * FROM campaign_messages
		WHERE campaign_id = :campaign_id
		AND tenant_id = :tenant_id
	`
	params := map[string]interface{}{
		"campaign_id": campaignID,
		"tenant_id":   types.GetTenantID(ctx),
	}

	if messageStatus != "" {
		query += ` AND message_status = :message_status`
		params["message_status"] = messageStatus
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		r.logger.Errorw("failed to list campaign messages", "error", err, "campaign_id", campaignID)
		return nil, ierr.WithError(err).
			WithHint("Failed to list campaign messages").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var messages []*campaign.Message
	for rows.Next() {
		var m campaign.Message
		if err := rows.StructScan(&m); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read campaign message").
				Mark(ierr.ErrDatabase)
		}
		messages = append(messages, &m)
	}
	return messages, nil
}

func (r *messageRepository) Update(ctx context.Context, m *campaign.Message) error {
	query := `
		UPDATE campaign_messages
		SET message_status = :message_status,
		failure_reason = :failure_reason,
		attempts = :attempts,
		sent_at = :sent_at,
		updated_at = :updated_at,
		updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
	`

	m.UpdatedAt = time.Now().UTC()
	m.UpdatedBy = types.GetUserID(ctx)

	_, err := r.db.NamedExecContext(ctx, query, m)
	if err != nil {
		r.logger.Errorw("failed to update campaign message",
			"error", err,
			"message_id", m.ID,
			"campaign_id", m.CampaignID)
		return ierr.WithError(err).
			WithHint("Failed to update campaign message").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *messageRepository) Stats(ctx context.Context, campaignID string) (*campaign.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE message_status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE message_status = 'sent') AS sent,
			COUNT(*) FILTER (WHERE message_status = 'failed') AS failed
		FROM campaign_messages
		WHERE campaign_id = :campaign_id
		AND tenant_id = :tenant_id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"campaign_id": campaignID,
		"tenant_id":   types.GetTenantID(ctx),
	})
	if err != nil {
		r.logger.Errorw("failed to get campaign stats", "error", err, "campaign_id", campaignID)
		return nil, ierr.WithError(err).
			WithHint("Failed to get campaign stats").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	stats := &campaign.Stats{}
	if rows.Next() {
		if err := rows.Scan(&stats.Total, &stats.Pending, &stats.Sent, &stats.Failed); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to read campaign stats").
				Mark(ierr.ErrDatabase)
		}
	}
	return stats, nil
}
