package models_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/popeskul/crewreach/internal/models"
)

func TestJobTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    models.JobStatus
		to      models.JobStatus
		allowed bool
	}{
		{"scheduled to en_route", models.JobStatusScheduled, models.JobStatusEnRoute, true},
		{"scheduled straight to completed", models.JobStatusScheduled, models.JobStatusCompleted, true},
		{"en_route to in_progress", models.JobStatusEnRoute, models.JobStatusInProgress, true},
		{"in_progress to cancelled", models.JobStatusInProgress, models.JobStatusCancelled, true},
		{"in_progress back to scheduled", models.JobStatusInProgress, models.JobStatusScheduled, false},
		{"same status", models.JobStatusEnRoute, models.JobStatusEnRoute, false},
		{"completed is terminal", models.JobStatusCompleted, models.JobStatusCancelled, false},
		{"cancelled is terminal", models.JobStatusCancelled, models.JobStatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, models.JobTransitions.Can(tt.from, tt.to))
		})
	}

	assert.True(t, models.JobStatusCompleted.IsTerminal())
	assert.True(t, models.JobStatusCancelled.IsTerminal())
	assert.False(t, models.JobStatusScheduled.IsTerminal())
}

func TestJob_StampStatus_KeepsFirstStamp(t *testing.T) {
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	job := &models.Job{EnRouteAt: sql.NullTime{Time: first, Valid: true}}

	job.StampStatus(models.JobStatusEnRoute, first.Add(time.Hour))
	job.StampStatus(models.JobStatusCompleted, first.Add(2*time.Hour))

	assert.Equal(t, first, job.EnRouteAt.Time)
	assert.True(t, job.CompletedAt.Valid)
	assert.Equal(t, first.Add(2*time.Hour), job.CompletedAt.Time)
	assert.False(t, job.CancelledAt.Valid)
}

func TestReviewRequestTransitions(t *testing.T) {
	assert.True(t, models.ReviewRequestTransitions.Can(models.ReviewStatusSent, models.ReviewStatusReminded1))
	assert.True(t, models.ReviewRequestTransitions.Can(models.ReviewStatusReminded1, models.ReviewStatusReminded2))
	assert.False(t, models.ReviewRequestTransitions.Can(models.ReviewStatusReminded2, models.ReviewStatusSent))
	assert.False(t, models.ReviewRequestTransitions.Can(models.ReviewStatusStopped, models.ReviewStatusSent))

	for _, s := range models.ActiveReviewStatuses {
		assert.True(t, s.IsActive(), s)
	}
	assert.False(t, models.ReviewStatusStopped.IsActive())

	status, ok := models.DripStepStatus(1)
	assert.True(t, ok)
	assert.Equal(t, models.ReviewStatusReminded1, status)
	_, ok = models.DripStepStatus(3)
	assert.False(t, ok)
}

func TestCampaignTransitions(t *testing.T) {
	assert.True(t, models.CampaignTransitions.Can(models.CampaignStatusDraft, models.CampaignStatusSending))
	assert.True(t, models.CampaignTransitions.Can(models.CampaignStatusPaused, models.CampaignStatusSending))
	assert.True(t, models.CampaignTransitions.Can(models.CampaignStatusSending, models.CampaignStatusPaused))
	assert.False(t, models.CampaignTransitions.Can(models.CampaignStatusDraft, models.CampaignStatusPaused))
}

func TestParseMessageStatus(t *testing.T) {
	tests := []struct {
		in   string
		want models.MessageStatus
		ok   bool
	}{
		{"delivered", models.MessageStatusDelivered, true},
		{"undelivered", models.MessageStatusUndelivered, true},
		{"accepted", models.MessageStatusQueued, true},
		{"read", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := models.ParseMessageStatus(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.True(t, models.MessageStatusFailed.IsFailure())
	assert.False(t, models.MessageStatusSent.IsFailure())
}

func TestContact_FirstName(t *testing.T) {
	c := &models.Contact{Name: sql.NullString{String: "  Dana  Whitfield ", Valid: true}}
	assert.Equal(t, "Dana", c.FirstName())
	assert.Equal(t, "Dana  Whitfield", c.DisplayName())
	assert.Equal(t, "", (&models.Contact{}).FirstName())
}

func TestPreview(t *testing.T) {
	short := "On my way"
	assert.Equal(t, short, models.Preview(short))

	long := make([]rune, 200)
	for i := range long {
		long[i] = 'a'
	}
	got := []rune(models.Preview(string(long)))
	assert.Len(t, got, 120)
	assert.Equal(t, '…', got[119])
}
