package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/events"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
	"github.com/popeskul/crewreach/internal/templates"
)

const clockLayout = "15:04"

type jobService struct {
	repo      repository.Repository
	settings  SettingsService
	messenger Messenger
	events    emitter
	logger    *zap.Logger
}

func NewJobService(
	repo repository.Repository,
	settings SettingsService,
	messenger Messenger,
	publisher events.Publisher,
	logger *zap.Logger,
) JobService {
	return &jobService{
		repo:      repo,
		settings:  settings,
		messenger: messenger,
		events:    emitter{publisher: publisher, logger: logger},
		logger:    logger,
	}
}

func (s *jobService) Create(ctx context.Context, tenantID uuid.UUID, in CreateJobInput) (*models.Job, error) {
	const op = "jobs.Create"

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.Validation(op, "title is required")
	}
	if in.ScheduledDate.IsZero() {
		return nil, apperrors.Validation(op, "scheduled_date is required")
	}

	job := &models.Job{
		ID:            uuid.New(),
		TenantID:      tenantID,
		ContactID:     in.ContactID,
		Title:         title,
		ScheduledDate: in.ScheduledDate,
		TimeMode:      in.TimeMode,
		Status:        models.JobStatusScheduled,
	}
	if err := applyTimeMode(job, in); err != nil {
		return nil, apperrors.Validation(op, "%v", err)
	}

	if _, err := s.repo.Contact().GetByID(ctx, tenantID, in.ContactID); err != nil {
		return nil, repoErr(op, err, "contact")
	}

	if err := s.repo.Job().Create(ctx, job); err != nil {
		return nil, repoErr(op, err, "job")
	}

	s.logger.Info("Job created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("job_id", job.ID.String()),
		zap.String("time_mode", string(job.TimeMode)))

	return job, nil
}

// applyTimeMode validates the time fields required by the job's mode and
// copies only those onto job.
func applyTimeMode(job *models.Job, in CreateJobInput) error {
	switch in.TimeMode {
	case models.TimeModeWindow:
		start, err := time.Parse(clockLayout, in.WindowStart)
		if err != nil {
			return errors.New("window_start must be HH:MM")
		}
		end, err := time.Parse(clockLayout, in.WindowEnd)
		if err != nil {
			return errors.New("window_end must be HH:MM")
		}
		if !start.Before(end) {
			return errors.New("window_start must be before window_end")
		}
		job.WindowStart = sql.NullString{String: in.WindowStart, Valid: true}
		job.WindowEnd = sql.NullString{String: in.WindowEnd, Valid: true}
	case models.TimeModeTimeOfDay:
		if _, err := time.Parse(clockLayout, in.TimeOfDay); err != nil {
			return errors.New("time_of_day must be HH:MM")
		}
		job.TimeOfDay = sql.NullString{String: in.TimeOfDay, Valid: true}
	case models.TimeModeExact:
		if in.StartAt == nil || in.StartAt.IsZero() {
			return errors.New("start_at is required for exact jobs")
		}
		job.StartAt = sql.NullTime{Time: *in.StartAt, Valid: true}
	default:
		return fmt.Errorf("unknown time_mode %q", in.TimeMode)
	}
	return nil
}

func (s *jobService) Get(ctx context.Context, tenantID, jobID uuid.UUID) (*models.Job, error) {
	job, err := s.repo.Job().GetByID(ctx, tenantID, jobID)
	if err != nil {
		return nil, repoErr("jobs.Get", err, "job")
	}
	return job, nil
}

// Transition commits the status change first and then runs its side
// effects. A side effect failure is reported in the Outcome, never returned.
func (s *jobService) Transition(ctx context.Context, tenantID, jobID uuid.UUID, to models.JobStatus) (*models.Job, *Outcome, error) {
	const op = "jobs.Transition"

	if !models.JobTransitions.Valid(to) {
		return nil, nil, apperrors.Validation(op, "unknown job status %q", to)
	}

	job, err := s.repo.Job().GetByID(ctx, tenantID, jobID)
	if err != nil {
		return nil, nil, repoErr(op, err, "job")
	}

	from := job.Status
	if err := models.JobTransitions.Check(from, to); err != nil {
		return nil, nil, apperrors.InvalidTransition(op, "%v", err)
	}

	settings, err := s.settings.Resolve(ctx, tenantID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	outcome := &Outcome{From: from, To: to}

	job.Status = to
	job.StampStatus(to, now)
	if to == models.JobStatusCompleted {
		at := now.Add(settings.ReviewDelay)
		job.ReviewRequestedAt = sql.NullTime{Time: at, Valid: true}
		outcome.add(SideEffectReviewScheduled, SideEffectArmed, at.UTC().Format(time.RFC3339))
	}

	if err := s.repo.Job().UpdateStatus(ctx, job, from); err != nil {
		return nil, nil, repoErr(op, err, "job")
	}
	outcome.Applied = true

	switch to {
	case models.JobStatusEnRoute:
		s.notify(ctx, outcome, SideEffectArrivalNotice, settings.ArrivalNotice, settings.Templates.Arrival, settings, job)
	case models.JobStatusCancelled:
		s.notify(ctx, outcome, SideEffectCancellationNotice, settings.CancellationNotice, settings.Templates.Cancellation, settings, job)
	}

	s.audit(ctx, job, outcome)
	s.events.emit(ctx, events.JobTransitioned, tenantID, map[string]any{
		"job_id": job.ID.String(),
		"from":   string(from),
		"to":     string(to),
	})

	s.logger.Info("Job transitioned",
		zap.String("tenant_id", tenantID.String()),
		zap.String("job_id", job.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Int("side_effects", len(outcome.SideEffects)))

	return job, outcome, nil
}

func (s *jobService) notify(
	ctx context.Context,
	outcome *Outcome,
	name string,
	enabled bool,
	tpl string,
	settings models.TenantSettings,
	job *models.Job,
) {
	if !enabled {
		outcome.add(name, SideEffectSkipped, "disabled for tenant")
		return
	}

	contact, err := s.repo.Contact().GetByID(ctx, job.TenantID, job.ContactID)
	if err != nil {
		s.logger.Warn("Failed to load job contact",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
		outcome.add(name, SideEffectFailed, "contact unavailable")
		return
	}

	vars := baseVars(settings, contact)
	vars[templates.JobTitle] = job.Title

	_, err = s.messenger.Send(ctx, settings, contact, templates.Render(tpl, vars))
	outcome.addResult(name, err)
	if err != nil && !apperrors.IsSkip(err) {
		s.logger.Warn("Job notice failed",
			zap.String("job_id", job.ID.String()),
			zap.String("notice", name),
			zap.Error(err))
	}
}

func (s *jobService) audit(ctx context.Context, job *models.Job, outcome *Outcome) {
	data, err := json.Marshal(map[string]any{
		"from":         outcome.From,
		"to":           outcome.To,
		"side_effects": outcome.SideEffects,
	})
	if err != nil {
		s.logger.Error("Failed to encode audit data", zap.Error(err))
		return
	}

	ev := &models.AuditEvent{
		TenantID:   job.TenantID,
		EntityType: "job",
		EntityID:   job.ID,
		Action:     "status_changed",
		Data:       data,
	}
	if err := s.repo.Audit().Record(ctx, ev); err != nil {
		s.logger.Warn("Failed to record audit event",
			zap.String("job_id", job.ID.String()),
			zap.Error(err))
	}
}
