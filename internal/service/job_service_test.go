package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
	"github.com/popeskul/crewreach/internal/service"
)

func newJobService(f *fixture) service.JobService {
	return service.NewJobService(f.repo, f.settings, f.messenger, f.publisher, f.logger)
}

func scheduledJob(tenantID uuid.UUID) *models.Job {
	return &models.Job{
		ID:        uuid.New(),
		TenantID:  tenantID,
		ContactID: uuid.New(),
		Title:     "Water heater install",
		TimeMode:  models.TimeModeTimeOfDay,
		Status:    models.JobStatusScheduled,
	}
}

func TestJobService_Transition_CompletedArmsReview(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	job := scheduledJob(tenantID)

	f.jobs.EXPECT().GetByID(gomock.Any(), tenantID, job.ID).Return(job, nil)
	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(testSettings(tenantID), nil)
	f.jobs.EXPECT().UpdateStatus(gomock.Any(), job, models.JobStatusScheduled).Return(nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev *models.AuditEvent) error {
		assert.Equal(t, "status_changed", ev.Action)
		assert.Equal(t, job.ID, ev.EntityID)
		assert.Contains(t, string(ev.Data), `"to":"completed"`)
		return nil
	})

	before := time.Now()
	got, outcome, err := newJobService(f).Transition(context.Background(), tenantID, job.ID, models.JobStatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, models.JobStatusCompleted, got.Status)
	assert.True(t, got.CompletedAt.Valid)
	require.True(t, got.ReviewRequestedAt.Valid)
	assert.WithinDuration(t, before.Add(2*time.Hour), got.ReviewRequestedAt.Time, time.Minute)
	assert.False(t, got.ReviewRequestID.Valid)

	assert.True(t, outcome.Applied)
	assert.Equal(t, models.JobStatusScheduled, outcome.From)
	require.Len(t, outcome.SideEffects, 1)
	assert.Equal(t, service.SideEffectReviewScheduled, outcome.SideEffects[0].Name)
	assert.Equal(t, service.SideEffectArmed, outcome.SideEffects[0].Status)
}

func TestJobService_Transition_TerminalRejected(t *testing.T) {
	for _, status := range []models.JobStatus{models.JobStatusCompleted, models.JobStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(t)
			tenantID := uuid.New()
			job := scheduledJob(tenantID)
			job.Status = status

			f.jobs.EXPECT().GetByID(gomock.Any(), tenantID, job.ID).Return(job, nil)

			_, outcome, err := newJobService(f).Transition(context.Background(), tenantID, job.ID, models.JobStatusEnRoute)
			require.Error(t, err)
			assert.Nil(t, outcome)
			assert.Equal(t, apperrors.KindInvalidTransition, apperrors.KindOf(err))
		})
	}
}

func TestJobService_Transition_UnknownStatus(t *testing.T) {
	f := newFixture(t)

	_, _, err := newJobService(f).Transition(context.Background(), uuid.New(), uuid.New(), models.JobStatus("teleported"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestJobService_Transition_NoticeFailureStillApplies(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	job := scheduledJob(tenantID)
	contact := testContact(tenantID)
	contact.ID = job.ContactID

	f.jobs.EXPECT().GetByID(gomock.Any(), tenantID, job.ID).Return(job, nil)
	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(testSettings(tenantID), nil)
	f.jobs.EXPECT().UpdateStatus(gomock.Any(), job, models.JobStatusScheduled).Return(nil)
	f.contacts.EXPECT().GetByID(gomock.Any(), tenantID, job.ContactID).Return(contact, nil)
	f.messenger.EXPECT().Send(gomock.Any(), gomock.Any(), contact, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.TenantSettings, _ *models.Contact, body string) (*models.Message, error) {
			assert.Equal(t, "Hi Dana, your technician from Acme Plumbing is on the way.", body)
			return nil, apperrors.Gateway("twilio.SendSMS", errors.New("timeout"))
		})
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	got, outcome, err := newJobService(f).Transition(context.Background(), tenantID, job.ID, models.JobStatusEnRoute)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusEnRoute, got.Status)
	assert.True(t, got.EnRouteAt.Valid)
	assert.True(t, outcome.Applied)
	require.Len(t, outcome.SideEffects, 1)
	assert.Equal(t, service.SideEffectArrivalNotice, outcome.SideEffects[0].Name)
	assert.Equal(t, service.SideEffectFailed, outcome.SideEffects[0].Status)
}

func TestJobService_Transition_OptedOutNoticeIsSkipped(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	job := scheduledJob(tenantID)
	contact := testContact(tenantID)
	contact.OptedOut = true

	f.jobs.EXPECT().GetByID(gomock.Any(), tenantID, job.ID).Return(job, nil)
	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(testSettings(tenantID), nil)
	f.jobs.EXPECT().UpdateStatus(gomock.Any(), job, models.JobStatusScheduled).Return(nil)
	f.contacts.EXPECT().GetByID(gomock.Any(), tenantID, job.ContactID).Return(contact, nil)
	f.messenger.EXPECT().Send(gomock.Any(), gomock.Any(), contact, gomock.Any()).
		Return(nil, apperrors.Skip("messenger.Send", "contact opted out"))
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	_, outcome, err := newJobService(f).Transition(context.Background(), tenantID, job.ID, models.JobStatusCancelled)
	require.NoError(t, err)
	require.Len(t, outcome.SideEffects, 1)
	assert.Equal(t, service.SideEffectCancellationNotice, outcome.SideEffects[0].Name)
	assert.Equal(t, service.SideEffectSkipped, outcome.SideEffects[0].Status)
}

func TestJobService_Transition_DisabledNotice(t *testing.T) {
	f := newFixture(t)
	f.allowEvents()
	tenantID := uuid.New()
	job := scheduledJob(tenantID)
	settings := testSettings(tenantID)
	settings.CancellationNotice = false

	f.jobs.EXPECT().GetByID(gomock.Any(), tenantID, job.ID).Return(job, nil)
	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(settings, nil)
	f.jobs.EXPECT().UpdateStatus(gomock.Any(), job, models.JobStatusScheduled).Return(nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	_, outcome, err := newJobService(f).Transition(context.Background(), tenantID, job.ID, models.JobStatusCancelled)
	require.NoError(t, err)
	require.Len(t, outcome.SideEffects, 1)
	assert.Equal(t, service.SideEffectSkipped, outcome.SideEffects[0].Status)
	assert.Equal(t, "disabled for tenant", outcome.SideEffects[0].Detail)
}

func TestJobService_Transition_ConcurrentChange(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()
	job := scheduledJob(tenantID)

	f.jobs.EXPECT().GetByID(gomock.Any(), tenantID, job.ID).Return(job, nil)
	f.settings.EXPECT().Resolve(gomock.Any(), tenantID).Return(testSettings(tenantID), nil)
	f.jobs.EXPECT().UpdateStatus(gomock.Any(), job, models.JobStatusScheduled).Return(repository.ErrConflict)

	_, outcome, err := newJobService(f).Transition(context.Background(), tenantID, job.ID, models.JobStatusInProgress)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Nil(t, outcome)
}

func TestJobService_Create_Validation(t *testing.T) {
	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   service.CreateJobInput
	}{
		{"missing title", service.CreateJobInput{ScheduledDate: date, TimeMode: models.TimeModeTimeOfDay, TimeOfDay: "09:00"}},
		{"missing date", service.CreateJobInput{Title: "Tune-up", TimeMode: models.TimeModeTimeOfDay, TimeOfDay: "09:00"}},
		{"window reversed", service.CreateJobInput{Title: "Tune-up", ScheduledDate: date, TimeMode: models.TimeModeWindow, WindowStart: "13:00", WindowEnd: "09:00"}},
		{"window malformed", service.CreateJobInput{Title: "Tune-up", ScheduledDate: date, TimeMode: models.TimeModeWindow, WindowStart: "9am", WindowEnd: "11:00"}},
		{"time of day malformed", service.CreateJobInput{Title: "Tune-up", ScheduledDate: date, TimeMode: models.TimeModeTimeOfDay, TimeOfDay: "25:00"}},
		{"exact without start", service.CreateJobInput{Title: "Tune-up", ScheduledDate: date, TimeMode: models.TimeModeExact}},
		{"unknown mode", service.CreateJobInput{Title: "Tune-up", ScheduledDate: date, TimeMode: "whenever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := newJobService(f).Create(context.Background(), uuid.New(), tt.in)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestJobService_Create_Window(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()
	contact := testContact(tenantID)

	f.contacts.EXPECT().GetByID(gomock.Any(), tenantID, contact.ID).Return(contact, nil)
	f.jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	job, err := newJobService(f).Create(context.Background(), tenantID, service.CreateJobInput{
		ContactID:     contact.ID,
		Title:         " Furnace repair ",
		ScheduledDate: time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		TimeMode:      models.TimeModeWindow,
		WindowStart:   "08:00",
		WindowEnd:     "12:00",
		TimeOfDay:     "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Furnace repair", job.Title)
	assert.Equal(t, models.JobStatusScheduled, job.Status)
	assert.Equal(t, "08:00", job.WindowStart.String)
	assert.Equal(t, "12:00", job.WindowEnd.String)
	assert.False(t, job.TimeOfDay.Valid)
}

func TestJobService_Create_UnknownContact(t *testing.T) {
	f := newFixture(t)
	tenantID := uuid.New()
	start := time.Date(2026, 11, 2, 15, 30, 0, 0, time.UTC)

	f.contacts.EXPECT().GetByID(gomock.Any(), tenantID, gomock.Any()).Return(nil, repository.ErrNotFound)

	_, err := newJobService(f).Create(context.Background(), tenantID, service.CreateJobInput{
		ContactID:     uuid.New(),
		Title:         "Leak check",
		ScheduledDate: start,
		TimeMode:      models.TimeModeExact,
		StartAt:       &start,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
