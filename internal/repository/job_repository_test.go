package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
)

func createJob(t *testing.T, db *sqlx.DB, tenantID, contactID uuid.UUID) *models.Job {
	t.Helper()
	job := &models.Job{
		TenantID:      tenantID,
		ContactID:     contactID,
		Title:         "Water heater install",
		ScheduledDate: time.Now().UTC().Truncate(24 * time.Hour),
		TimeMode:      models.TimeModeWindow,
		WindowStart:   sql.NullString{String: "09:00", Valid: true},
		WindowEnd:     sql.NullString{String: "11:00", Valid: true},
		Status:        models.JobStatusScheduled,
	}
	require.NoError(t, repository.NewJobRepository(db).Create(context.Background(), job))
	return job
}

// completeJob moves a job to completed with the review armed at reviewAt.
func completeJob(t *testing.T, db *sqlx.DB, job *models.Job, reviewAt time.Time) {
	t.Helper()
	from := job.Status
	job.Status = models.JobStatusCompleted
	job.CompletedAt = sql.NullTime{Time: time.Now(), Valid: true}
	job.ReviewRequestedAt = sql.NullTime{Time: reviewAt, Valid: true}
	require.NoError(t, repository.NewJobRepository(db).UpdateStatus(context.Background(), job, from))
}

func TestJobRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewJobRepository(db)
	ctx := context.Background()

	tenantID := insertTenant(t, db)
	contact := insertContact(t, db, tenantID, "+15550001111")
	job := createJob(t, db, tenantID, contact.ID)

	got, err := repo.GetByID(ctx, tenantID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.Title, got.Title)
	assert.Equal(t, models.JobStatusScheduled, got.Status)
	assert.Equal(t, "09:00", got.WindowStart.String)
	assert.False(t, got.ReviewRequestID.Valid)

	_, err = repo.GetByID(ctx, uuid.New(), job.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestJobRepository_UpdateStatus_CompareAndSet(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewJobRepository(db)
	ctx := context.Background()

	tenantID := insertTenant(t, db)
	contact := insertContact(t, db, tenantID, "+15550002222")
	job := createJob(t, db, tenantID, contact.ID)

	job.Status = models.JobStatusEnRoute
	job.EnRouteAt = sql.NullTime{Time: time.Now(), Valid: true}
	require.NoError(t, repo.UpdateStatus(ctx, job, models.JobStatusScheduled))

	// a second writer still believing the job is scheduled loses
	stale := *job
	stale.Status = models.JobStatusCancelled
	stale.CancelledAt = sql.NullTime{Time: time.Now(), Valid: true}
	err := repo.UpdateStatus(ctx, &stale, models.JobStatusScheduled)
	assert.ErrorIs(t, err, repository.ErrConflict)

	got, err := repo.GetByID(ctx, tenantID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusEnRoute, got.Status)
	assert.True(t, got.EnRouteAt.Valid)
	assert.False(t, got.CancelledAt.Valid)
}

func TestJobRepository_ListDueForReview(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewJobRepository(db)
	ctx := context.Background()
	now := time.Now()

	tenantID := insertTenant(t, db)
	contact := insertContact(t, db, tenantID, "+15550003333")

	due := createJob(t, db, tenantID, contact.ID)
	completeJob(t, db, due, now.Add(-time.Hour))

	older := createJob(t, db, tenantID, contact.ID)
	completeJob(t, db, older, now.Add(-2*time.Hour))

	notYet := createJob(t, db, tenantID, contact.ID)
	completeJob(t, db, notYet, now.Add(time.Hour))

	createJob(t, db, tenantID, contact.ID)

	jobs, err := repo.ListDueForReview(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, older.ID, jobs[0].ID)
	assert.Equal(t, due.ID, jobs[1].ID)

	jobs, err = repo.ListDueForReview(ctx, now, 1)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestJobRepository_AttachReviewRequest(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewJobRepository(db)
	requests := repository.NewReviewRequestRepository(db)
	ctx := context.Background()
	now := time.Now()

	tenantID := insertTenant(t, db)
	contact := insertContact(t, db, tenantID, "+15550004444")
	job := createJob(t, db, tenantID, contact.ID)
	completeJob(t, db, job, now.Add(-time.Minute))

	first := newReviewRequest(tenantID, contact.ID, now)
	first.JobID = uuid.NullUUID{UUID: job.ID, Valid: true}
	require.NoError(t, requests.Create(ctx, first))
	second := newReviewRequest(tenantID, contact.ID, now)
	require.NoError(t, requests.Create(ctx, second))

	require.NoError(t, repo.AttachReviewRequest(ctx, job.ID, first.ID))
	err := repo.AttachReviewRequest(ctx, job.ID, second.ID)
	assert.ErrorIs(t, err, repository.ErrConflict)

	got, err := repo.GetByID(ctx, tenantID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ReviewRequestID.UUID)

	jobs, err := repo.ListDueForReview(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestJobRepository_DisarmReview(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewJobRepository(db)
	ctx := context.Background()
	now := time.Now()

	tenantID := insertTenant(t, db)
	contact := insertContact(t, db, tenantID, "+15550005555")
	job := createJob(t, db, tenantID, contact.ID)
	completeJob(t, db, job, now.Add(-time.Minute))

	require.NoError(t, repo.DisarmReview(ctx, job.ID))

	got, err := repo.GetByID(ctx, tenantID, job.ID)
	require.NoError(t, err)
	assert.False(t, got.ReviewRequestedAt.Valid)
	assert.Equal(t, models.JobStatusCompleted, got.Status)

	jobs, err := repo.ListDueForReview(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
