package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
)

func createCampaign(t *testing.T, db *sqlx.DB, tenantID uuid.UUID) *models.ReviewCampaign {
	t.Helper()
	c := &models.ReviewCampaign{
		TenantID:         tenantID,
		Name:             "Winter check-in",
		Status:           models.CampaignStatusDraft,
		ExcludeReviewed:  true,
		ExcludePending:   true,
		TotalContacts:    3,
		RateLimitPerHour: 20,
	}
	require.NoError(t, repository.NewCampaignRepository(db).Create(context.Background(), c))
	return c
}

func startCampaign(t *testing.T, db *sqlx.DB, c *models.ReviewCampaign) {
	t.Helper()
	from := c.Status
	c.Status = models.CampaignStatusSending
	c.StartedAt = sql.NullTime{Time: time.Now(), Valid: true}
	require.NoError(t, repository.NewCampaignRepository(db).UpdateStatus(context.Background(), c, from))
}

func TestCampaignRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	tenantID := insertTenant(t, db)
	c := createCampaign(t, db, tenantID)

	got, err := repo.GetByID(ctx, tenantID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter check-in", got.Name)
	assert.Equal(t, models.CampaignStatusDraft, got.Status)
	assert.Empty(t, got.TagFilter)
	assert.True(t, got.ExcludeReviewed)

	_, err = repo.GetByID(ctx, insertTenant(t, db), c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCampaignRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	tenantID := insertTenant(t, db)
	c := createCampaign(t, db, tenantID)
	startCampaign(t, db, c)

	stale := *c
	stale.Status = models.CampaignStatusSending
	err := repo.UpdateStatus(ctx, &stale, models.CampaignStatusDraft)
	assert.ErrorIs(t, err, repository.ErrConflict)

	c.Status = models.CampaignStatusPaused
	c.PausedAt = sql.NullTime{Time: time.Now(), Valid: true}
	require.NoError(t, repo.UpdateStatus(ctx, c, models.CampaignStatusSending))

	got, err := repo.GetByID(ctx, tenantID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusPaused, got.Status)
	assert.True(t, got.StartedAt.Valid)
	assert.True(t, got.PausedAt.Valid)
}

func TestCampaignRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	requests := repository.NewReviewRequestRepository(db)
	ctx := context.Background()

	tenantID := insertTenant(t, db)
	contact := insertContact(t, db, tenantID, "+15553330000")
	c := createCampaign(t, db, tenantID)
	startCampaign(t, db, c)

	req := newReviewRequest(tenantID, contact.ID, time.Now())
	req.CampaignID = uuid.NullUUID{UUID: c.ID, Valid: true}
	require.NoError(t, requests.Create(ctx, req))

	err := repo.Delete(ctx, tenantID, c.ID)
	assert.ErrorIs(t, err, repository.ErrConflict, "a sending campaign cannot be deleted")

	c.Status = models.CampaignStatusPaused
	c.PausedAt = sql.NullTime{Time: time.Now(), Valid: true}
	require.NoError(t, repo.UpdateStatus(ctx, c, models.CampaignStatusSending))
	require.NoError(t, repo.Delete(ctx, tenantID, c.ID))

	_, err = repo.GetByID(ctx, tenantID, c.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.False(t, got.CampaignID.Valid, "issued requests outlive their campaign")
}

func TestCampaignRepository_ListSendingAndComplete(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	tenantID := insertTenant(t, db)
	sending := createCampaign(t, db, tenantID)
	startCampaign(t, db, sending)
	createCampaign(t, db, tenantID)

	list, err := repo.ListSending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sending.ID, list[0].ID)

	require.NoError(t, repo.MarkCompleted(ctx, sending.ID, time.Now()))
	assert.ErrorIs(t, repo.MarkCompleted(ctx, sending.ID, time.Now()), repository.ErrConflict)

	list, err = repo.ListSending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReviewRequestRepository_CountByCampaignSince(t *testing.T) {
	db := setupTestDB(t)
	requests := repository.NewReviewRequestRepository(db)
	ctx := context.Background()
	now := time.Now()

	tenantID := insertTenant(t, db)
	c := createCampaign(t, db, tenantID)

	for i, age := range []time.Duration{10 * time.Minute, 30 * time.Minute, 2 * time.Hour} {
		contact := insertContact(t, db, tenantID, fmt.Sprintf("+155533301%02d", i))
		req := newReviewRequest(tenantID, contact.ID, now.Add(-age))
		req.CampaignID = uuid.NullUUID{UUID: c.ID, Valid: true}
		require.NoError(t, requests.Create(ctx, req))
	}

	count, err := requests.CountByCampaignSince(ctx, c.ID, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
