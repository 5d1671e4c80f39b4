package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/popeskul/crewreach/internal/models"
)

const contactColumns = `id, tenant_id, phone, name, email, tags, opted_out, opted_out_at,
	has_left_review, source, created_at, updated_at`

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Contact, error) {
	var c models.Contact
	err := r.db.GetContext(ctx, &c,
		`SELECT `+contactColumns+` FROM contacts WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return nil, notFoundOr(err, "contact")
	}
	return &c, nil
}

func (r *contactRepository) GetByPhone(ctx context.Context, tenantID uuid.UUID, phone string) (*models.Contact, error) {
	var c models.Contact
	err := r.db.GetContext(ctx, &c,
		`SELECT `+contactColumns+` FROM contacts WHERE tenant_id = $1 AND phone = $2`, tenantID, phone)
	if err != nil {
		return nil, notFoundOr(err, "contact")
	}
	return &c, nil
}

// FindOrCreateByPhone inserts a contact unless (tenant, phone) exists. The
// no-op update on conflict makes RETURNING yield the existing row, and xmax
// tells an insert apart from a conflict.
func (r *contactRepository) FindOrCreateByPhone(ctx context.Context, tenantID uuid.UUID, phone string, source models.ContactSource) (*models.Contact, bool, error) {
	query := `
		INSERT INTO contacts (id, tenant_id, phone, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (tenant_id, phone) DO UPDATE SET phone = EXCLUDED.phone
		RETURNING ` + contactColumns + `, (xmax = 0) AS inserted`

	var row struct {
		models.Contact
		Inserted bool `db:"inserted"`
	}
	err := r.db.GetContext(ctx, &row, query, uuid.New(), tenantID, phone, source, time.Now())
	if err != nil {
		return nil, false, fmt.Errorf("failed to find or create contact: %w", err)
	}
	c := row.Contact
	return &c, row.Inserted, nil
}

// MarkOptedOut sets the sticky opt-out flag. The first opt-out time is kept.
func (r *contactRepository) MarkOptedOut(ctx context.Context, tenantID, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE contacts
		SET opted_out = TRUE,
		    opted_out_at = COALESCE(opted_out_at, $3),
		    updated_at = $3
		WHERE tenant_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, tenantID, id, at)
	if err != nil {
		return fmt.Errorf("failed to mark contact opted out: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("contact: %w", ErrNotFound))
}

func (r *contactRepository) MarkReviewed(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		UPDATE contacts SET has_left_review = TRUE, updated_at = $3
		WHERE tenant_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, tenantID, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark contact reviewed: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("contact: %w", ErrNotFound))
}

// audienceWhere renders the shared audience predicate. $1 is the tenant,
// $2 the tag filter, $3 the pending window start.
const audienceWhere = `
	c.tenant_id = $1
	AND c.opted_out = FALSE
	AND (cardinality($2::text[]) = 0 OR c.tags && $2::text[])`

const pendingExclusion = `
	AND NOT EXISTS (
		SELECT 1 FROM review_requests rr
		WHERE rr.tenant_id = c.tenant_id
		  AND rr.contact_id = c.id
		  AND rr.status IN ('sent', 'reminded_1', 'reminded_2')
		  AND rr.created_at >= $3)`

func (r *contactRepository) CountAudience(ctx context.Context, tenantID uuid.UUID, filter models.AudienceFilter, pendingSince time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM contacts c WHERE` + audienceWhere
	if filter.ExcludeReviewed {
		query += ` AND c.has_left_review = FALSE`
	}
	if filter.ExcludePending {
		query += pendingExclusion
	} else {
		// keep $3 referenced so its type can be inferred
		query += ` AND $3::timestamptz IS NOT NULL`
	}

	var count int
	err := r.db.GetContext(ctx, &count, query, tenantID, pq.Array(nonNilTags(filter.Tags)), pendingSince)
	if err != nil {
		return 0, fmt.Errorf("failed to count audience: %w", err)
	}
	return count, nil
}

// ListCampaignAudience always excludes pending contacts: the one-active-
// request rule holds regardless of the campaign's own filter.
func (r *contactRepository) ListCampaignAudience(ctx context.Context, campaign *models.ReviewCampaign, pendingSince time.Time, limit int) ([]*models.Contact, error) {
	query := `SELECT ` + prefixed("c.", contactColumns) + ` FROM contacts c WHERE` + audienceWhere + pendingExclusion + `
		AND NOT EXISTS (
			SELECT 1 FROM review_requests cr
			WHERE cr.campaign_id = $4 AND cr.contact_id = c.id)`
	if campaign.ExcludeReviewed {
		query += ` AND c.has_left_review = FALSE`
	}
	query += ` ORDER BY c.created_at ASC, c.id ASC LIMIT $5`

	var contacts []*models.Contact
	err := r.db.SelectContext(ctx, &contacts, query,
		campaign.TenantID, pq.Array(nonNilTags(campaign.TagFilter)), pendingSince, campaign.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign audience: %w", err)
	}
	return contacts, nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
