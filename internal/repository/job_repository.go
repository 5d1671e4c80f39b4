package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/popeskul/crewreach/internal/models"
)

const jobColumns = `id, tenant_id, contact_id, title, scheduled_date, time_mode, window_start, window_end,
	time_of_day, start_at, status, en_route_at, started_at, completed_at, cancelled_at,
	review_requested_at, review_request_id, created_at, updated_at`

type jobRepository struct {
	db *sqlx.DB
}

func NewJobRepository(db *sqlx.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	now := time.Now()
	job.CreatedAt, job.UpdatedAt = now, now

	query := `
		INSERT INTO jobs (id, tenant_id, contact_id, title, scheduled_date, time_mode, window_start,
		                  window_end, time_of_day, start_at, status, created_at, updated_at)
		VALUES (:id, :tenant_id, :contact_id, :title, :scheduled_date, :time_mode, :window_start,
		        :window_end, :time_of_day, :start_at, :status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, job); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Job, error) {
	var j models.Job
	err := r.db.GetContext(ctx, &j, `SELECT `+jobColumns+` FROM jobs WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return nil, notFoundOr(err, "job")
	}
	return &j, nil
}

// UpdateStatus is a compare-and-set on status: a concurrent transition that
// already moved the job makes this one fail with ErrConflict.
func (r *jobRepository) UpdateStatus(ctx context.Context, job *models.Job, from models.JobStatus) error {
	job.UpdatedAt = time.Now()

	query := `
		UPDATE jobs
		SET status = $3,
		    en_route_at = $4,
		    started_at = $5,
		    completed_at = $6,
		    cancelled_at = $7,
		    review_requested_at = $8,
		    updated_at = $9
		WHERE tenant_id = $1 AND id = $2 AND status = $10`

	res, err := r.db.ExecContext(ctx, query,
		job.TenantID, job.ID, job.Status,
		job.EnRouteAt, job.StartedAt, job.CompletedAt, job.CancelledAt,
		job.ReviewRequestedAt, job.UpdatedAt, from)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("job %s: %w", job.ID, ErrConflict))
}

// ListDueForReview returns completed jobs whose review send time has passed
// and that have no review request yet, oldest first.
func (r *jobRepository) ListDueForReview(ctx context.Context, now time.Time, limit int) ([]*models.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE status = 'completed'
		  AND review_request_id IS NULL
		  AND review_requested_at IS NOT NULL
		  AND review_requested_at <= $1
		ORDER BY review_requested_at ASC
		LIMIT $2`

	var jobs []*models.Job
	if err := r.db.SelectContext(ctx, &jobs, query, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list jobs due for review: %w", err)
	}
	return jobs, nil
}

// AttachReviewRequest links a request to the job once. A second attach is a
// conflict; the first link stands.
func (r *jobRepository) AttachReviewRequest(ctx context.Context, jobID, requestID uuid.UUID) error {
	query := `
		UPDATE jobs SET review_request_id = $2, updated_at = $3
		WHERE id = $1 AND review_request_id IS NULL`

	res, err := r.db.ExecContext(ctx, query, jobID, requestID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to attach review request: %w", err)
	}
	return requireOneRow(res, fmt.Errorf("job %s already linked: %w", jobID, ErrConflict))
}

func (r *jobRepository) DisarmReview(ctx context.Context, jobID uuid.UUID) error {
	query := `
		UPDATE jobs SET review_requested_at = NULL, updated_at = $2
		WHERE id = $1 AND review_request_id IS NULL`

	if _, err := r.db.ExecContext(ctx, query, jobID, time.Now()); err != nil {
		return fmt.Errorf("failed to disarm review: %w", err)
	}
	return nil
}
