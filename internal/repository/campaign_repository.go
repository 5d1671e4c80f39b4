package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crewreach/internal/models"
)

const campaignColumns = `id, tenant_id, name, status, tag_filter, exclude_reviewed, exclude_pending,
	total_contacts, rate_limit_per_hour, started_at, paused_at, completed_at, created_at, updated_at`

type campaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, c *models.ReviewCampaign) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.TagFilter == nil {
		c.TagFilter = []string{}
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now

	query := `
		INSERT INTO review_campaigns (id, tenant_id, name, status, tag_filter, exclude_reviewed,
		                              exclude_pending, total_contacts, rate_limit_per_hour, created_at, updated_at)
		VALUES (:id, :tenant_id, :name, :status, :tag_filter, :exclude_reviewed,
		        :exclude_pending, :total_contacts, :rate_limit_per_hour, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.ReviewCampaign, error) {
	var c models.ReviewCampaign
	err := r.db.GetContext(ctx, &c,
		`SELECT `+campaignColumns+` FROM review_campaigns WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return nil, notFoundOr(err, "campaign")
	}
	return &c, nil
}

func (r *campaignRepository) UpdateStatus(ctx context.Context, c *models.ReviewCampaign, from models.CampaignStatus) error {
	c.UpdatedAt = time.Now()

	query := `
		UPDATE review_campaigns
		SET status = $3, started_at = $4, paused_at = $5, updated_at = $6
		WHERE tenant_id = $1 AND id = $2 AND status = $7`

	res, err := r.db.ExecContext(ctx, query, c.TenantID, c.ID, c.Status, c.StartedAt, c.PausedAt, c.UpdatedAt, from)
	if err != nil {
		return fmt.Errorf("failed to update campaign status: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("campaign %s: %w", c.ID, ErrConflict))
}

// Delete refuses to remove a sending campaign. Requests already issued keep
// their rows; the campaign back-reference is nulled by the foreign key.
func (r *campaignRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM review_campaigns WHERE tenant_id = $1 AND id = $2 AND status <> 'sending'`, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("campaign %s: %w", id, ErrConflict))
}

func (r *campaignRepository) ListSending(ctx context.Context, limit int) ([]*models.ReviewCampaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM review_campaigns
		WHERE status = 'sending' AND completed_at IS NULL
		ORDER BY started_at ASC NULLS LAST
		LIMIT $1`

	var campaigns []*models.ReviewCampaign
	if err := r.db.SelectContext(ctx, &campaigns, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list sending campaigns: %w", err)
	}
	return campaigns, nil
}

func (r *campaignRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE review_campaigns SET completed_at = $2, updated_at = $2 WHERE id = $1 AND completed_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("failed to complete campaign: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("campaign %s: %w", id, ErrConflict))
}
