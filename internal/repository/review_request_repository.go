package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crewreach/internal/models"
)

const reviewRequestColumns = `id, tenant_id, contact_id, job_id, campaign_id, status, drip_step, next_drip_at,
	last_sent_at, rating, replied_at, clicked_at, reviewed_at, created_at, updated_at`

type reviewRequestRepository struct {
	db *sqlx.DB
}

func NewReviewRequestRepository(db *sqlx.DB) ReviewRequestRepository {
	return &reviewRequestRepository{db: db}
}

func (r *reviewRequestRepository) Create(ctx context.Context, req *models.ReviewRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now

	query := `
		INSERT INTO review_requests (id, tenant_id, contact_id, job_id, campaign_id, status, drip_step,
		                             next_drip_at, last_sent_at, created_at, updated_at)
		VALUES (:id, :tenant_id, :contact_id, :job_id, :campaign_id, :status, :drip_step,
		        :next_drip_at, :last_sent_at, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("failed to create review request: %w", err)
	}
	return nil
}

func (r *reviewRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ReviewRequest, error) {
	var rr models.ReviewRequest
	err := r.db.GetContext(ctx, &rr, `SELECT `+reviewRequestColumns+` FROM review_requests WHERE id = $1`, id)
	if err != nil {
		return nil, notFoundOr(err, "review request")
	}
	return &rr, nil
}

// FindActive returns the newest non-terminal request for the contact created
// at or after since.
func (r *reviewRequestRepository) FindActive(ctx context.Context, tenantID, contactID uuid.UUID, since time.Time) (*models.ReviewRequest, error) {
	query := `
		SELECT ` + reviewRequestColumns + `
		FROM review_requests
		WHERE tenant_id = $1
		  AND contact_id = $2
		  AND status IN ('sent', 'reminded_1', 'reminded_2')
		  AND created_at >= $3
		ORDER BY created_at DESC
		LIMIT 1`

	var rr models.ReviewRequest
	if err := r.db.GetContext(ctx, &rr, query, tenantID, contactID, since); err != nil {
		return nil, notFoundOr(err, "active review request")
	}
	return &rr, nil
}

func (r *reviewRequestRepository) ListDueReminders(ctx context.Context, now time.Time, limit int) ([]*models.ReviewRequest, error) {
	query := `
		SELECT ` + reviewRequestColumns + `
		FROM review_requests
		WHERE status IN ('sent', 'reminded_1')
		  AND next_drip_at IS NOT NULL
		  AND next_drip_at <= $1
		ORDER BY next_drip_at ASC
		LIMIT $2`

	var reqs []*models.ReviewRequest
	if err := r.db.SelectContext(ctx, &reqs, query, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	return reqs, nil
}

// Advance moves the drip forward. The drip_step guard rejects a stale sweep
// that read the row before another run advanced it.
func (r *reviewRequestRepository) Advance(ctx context.Context, req *models.ReviewRequest, fromStep int) error {
	req.UpdatedAt = time.Now()

	query := `
		UPDATE review_requests
		SET status = $2, drip_step = $3, next_drip_at = $4, last_sent_at = $5, updated_at = $6
		WHERE id = $1 AND drip_step = $7 AND status <> 'stopped'`

	res, err := r.db.ExecContext(ctx, query,
		req.ID, req.Status, req.DripStep, req.NextDripAt, req.LastSentAt, req.UpdatedAt, fromStep)
	if err != nil {
		return fmt.Errorf("failed to advance review request: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("review request %s: %w", req.ID, ErrConflict))
}

func (r *reviewRequestRepository) Stop(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE review_requests SET status = 'stopped', next_drip_at = NULL, updated_at = $2
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to stop review request: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("review request %s: %w", id, ErrNotFound))
}

// Freeze clears next_drip_at without changing status.
func (r *reviewRequestRepository) Freeze(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE review_requests SET next_drip_at = NULL, updated_at = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to freeze review request: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("review request %s: %w", id, ErrNotFound))
}

// RecordReply keeps the first reply time; a later rating replaces an earlier one.
func (r *reviewRequestRepository) RecordReply(ctx context.Context, id uuid.UUID, rating *int, at time.Time) error {
	query := `
		UPDATE review_requests
		SET replied_at = COALESCE(replied_at, $2),
		    rating = COALESCE($3, rating),
		    next_drip_at = NULL,
		    updated_at = $2
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, at, rating)
	if err != nil {
		return fmt.Errorf("failed to record reply: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("review request %s: %w", id, ErrNotFound))
}

func (r *reviewRequestRepository) RecordClick(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE review_requests SET clicked_at = COALESCE(clicked_at, $2), updated_at = $2
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("review request %s: %w", id, ErrNotFound))
}

func (r *reviewRequestRepository) RecordReviewed(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE review_requests
		SET reviewed_at = COALESCE(reviewed_at, $2), next_drip_at = NULL, updated_at = $2
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to record review: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("review request %s: %w", id, ErrNotFound))
}

func (r *reviewRequestRepository) CountByCampaignSince(ctx context.Context, campaignID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM review_requests WHERE campaign_id = $1 AND created_at >= $2`, campaignID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count campaign requests: %w", err)
	}
	return count, nil
}
