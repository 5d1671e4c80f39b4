package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/apperrors"
	"github.com/popeskul/crewreach/internal/callback"
	"github.com/popeskul/crewreach/internal/events"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
	"github.com/popeskul/crewreach/internal/templates"
)

type dripService struct {
	repo      repository.Repository
	settings  SettingsService
	messenger Messenger
	callbacks *callback.Builder
	events    emitter
	batchSize int
	logger    *zap.Logger
}

func NewDripService(
	repo repository.Repository,
	settings SettingsService,
	messenger Messenger,
	callbacks *callback.Builder,
	publisher events.Publisher,
	batchSize int,
	logger *zap.Logger,
) DripService {
	return &dripService{
		repo:      repo,
		settings:  settings,
		messenger: messenger,
		callbacks: callbacks,
		events:    emitter{publisher: publisher, logger: logger},
		batchSize: batchSize,
		logger:    logger,
	}
}

// RunInitialSweep sends the first review ask for completed jobs whose
// review time has passed.
func (s *dripService) RunInitialSweep(ctx context.Context) (*SweepSummary, error) {
	summary := newSweepSummary(SweepInitial)

	jobs, err := s.repo.Job().ListDueForReview(ctx, time.Now(), s.batchSize)
	if err != nil {
		s.logger.Error("Failed to list jobs due for review", zap.Error(err))
		return nil, fmt.Errorf("failed to list jobs due for review: %w", err)
	}

	for _, job := range jobs {
		err := s.processJob(ctx, job)
		summary.Record(err)
		logItem(s.logger, "Initial review request", zap.String("job_id", job.ID.String()), err)
	}

	logSweep(s.logger, summary.finish())
	return summary, nil
}

func (s *dripService) processJob(ctx context.Context, job *models.Job) error {
	const op = "drip.initial"

	settings, contact, err := s.load(ctx, job.TenantID, job.ContactID)
	if err != nil {
		return s.disarmOn(ctx, job, err)
	}

	switch {
	case !settings.ReviewAutomation:
		err = apperrors.Skip(op, "review automation disabled")
	case !settings.CanMessage():
		err = apperrors.Skip(op, "tenant has no messaging number")
	case contact.OptedOut:
		err = apperrors.Skip(op, "contact opted out")
	case contact.HasLeftReview:
		err = apperrors.Skip(op, "contact already reviewed")
	}
	if err != nil {
		return s.disarmOn(ctx, job, err)
	}

	existing, err := s.repo.ReviewRequest().FindActive(ctx, job.TenantID, contact.ID, time.Now().Add(-settings.DedupWindow))
	switch {
	case err == nil:
		s.attach(ctx, job.ID, existing.ID)
		return apperrors.Skip(op, "active request %s within dedup window", existing.ID)
	case !errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := s.StartRequest(ctx, settings, contact, RequestOrigin{
		JobID: uuid.NullUUID{UUID: job.ID, Valid: true},
	})
	if req != nil {
		s.attach(ctx, job.ID, req.ID)
	}
	return err
}

// load resolves the tenant settings and contact of a sweep item. Missing
// rows become precondition skips.
func (s *dripService) load(ctx context.Context, tenantID, contactID uuid.UUID) (models.TenantSettings, *models.Contact, error) {
	const op = "drip.load"

	settings, err := s.settings.Resolve(ctx, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return settings, nil, apperrors.Skip(op, "tenant %s missing", tenantID)
		}
		return settings, nil, err
	}

	contact, err := s.repo.Contact().GetByID(ctx, tenantID, contactID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return settings, nil, apperrors.Skip(op, "contact %s missing", contactID)
		}
		return settings, nil, fmt.Errorf("%s: %w", op, err)
	}

	return settings, contact, nil
}

// disarmOn takes a skipped job out of the sweep so it does not hold a batch
// slot forever. Other errors leave the job eligible for the next run.
func (s *dripService) disarmOn(ctx context.Context, job *models.Job, err error) error {
	if !apperrors.IsSkip(err) {
		return err
	}
	if dErr := s.repo.Job().DisarmReview(ctx, job.ID); dErr != nil {
		s.logger.Warn("Failed to disarm job review",
			zap.String("job_id", job.ID.String()),
			zap.Error(dErr))
	}
	return err
}

func (s *dripService) attach(ctx context.Context, jobID, requestID uuid.UUID) {
	if err := s.repo.Job().AttachReviewRequest(ctx, jobID, requestID); err != nil {
		s.logger.Warn("Failed to link review request to job",
			zap.String("job_id", jobID.String()),
			zap.String("review_request_id", requestID.String()),
			zap.Error(err))
	}
}

// StartRequest records the request before sending so that a failed send
// cannot make the origin eligible again. The request is returned alongside
// a send error.
func (s *dripService) StartRequest(
	ctx context.Context,
	settings models.TenantSettings,
	contact *models.Contact,
	origin RequestOrigin,
) (*models.ReviewRequest, error) {
	const op = "drip.StartRequest"

	if contact.OptedOut {
		return nil, apperrors.Skip(op, "contact opted out")
	}
	if !settings.CanMessage() {
		return nil, apperrors.Skip(op, "tenant has no messaging number")
	}

	now := time.Now()
	req := &models.ReviewRequest{
		ID:         uuid.New(),
		TenantID:   settings.TenantID,
		ContactID:  contact.ID,
		JobID:      origin.JobID,
		CampaignID: origin.CampaignID,
		Status:     models.ReviewStatusSent,
		DripStep:   0,
		NextDripAt: sql.NullTime{Time: now.Add(settings.Reminder1Delay), Valid: true},
		LastSentAt: sql.NullTime{Time: now, Valid: true},
		CreatedAt:  now,
	}
	if err := s.repo.ReviewRequest().Create(ctx, req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	body := templates.Render(settings.Templates.Review, s.vars(settings, contact, req.ID))
	if _, err := s.messenger.Send(ctx, settings, contact, body); err != nil {
		return req, err
	}

	s.events.emit(ctx, events.ReviewRequestSent, settings.TenantID, map[string]any{
		"review_request_id": req.ID.String(),
		"contact_id":        contact.ID.String(),
		"job_id":            nullableID(req.JobID),
		"campaign_id":       nullableID(req.CampaignID),
	})

	return req, nil
}

// RunReminderSweep sends the next reminder of every due drip.
func (s *dripService) RunReminderSweep(ctx context.Context) (*SweepSummary, error) {
	summary := newSweepSummary(SweepReminders)

	reqs, err := s.repo.ReviewRequest().ListDueReminders(ctx, time.Now(), s.batchSize)
	if err != nil {
		s.logger.Error("Failed to list due reminders", zap.Error(err))
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}

	for _, req := range reqs {
		err := s.processReminder(ctx, req)
		summary.Record(err)
		logItem(s.logger, "Review reminder", zap.String("review_request_id", req.ID.String()), err)
	}

	logSweep(s.logger, summary.finish())
	return summary, nil
}

func (s *dripService) processReminder(ctx context.Context, req *models.ReviewRequest) error {
	const op = "drip.reminder"

	settings, contact, err := s.load(ctx, req.TenantID, req.ContactID)
	if err != nil {
		return s.freezeOn(ctx, req, err)
	}

	if contact.OptedOut {
		if err := s.repo.ReviewRequest().Stop(ctx, req.ID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		s.events.emit(ctx, events.ReviewRequestStopped, req.TenantID, map[string]any{
			"review_request_id": req.ID.String(),
			"reason":            "opted_out",
		})
		return apperrors.Skip(op, "contact opted out")
	}

	switch {
	case !settings.ReviewDrip:
		return s.freezeOn(ctx, req, apperrors.Skip(op, "review drip disabled"))
	case !settings.CanMessage():
		return s.freezeOn(ctx, req, apperrors.Skip(op, "tenant has no messaging number"))
	case contact.HasLeftReview:
		return s.freezeOn(ctx, req, apperrors.Skip(op, "contact already reviewed"))
	}

	now := time.Now()
	fromStep := req.DripStep
	step := fromStep + 1

	var tpl string
	switch step {
	case 1:
		tpl = settings.Templates.Reminder1
		req.NextDripAt = sql.NullTime{Time: now.Add(settings.Reminder2Delay), Valid: true}
	case 2:
		tpl = settings.Templates.Reminder2
		req.NextDripAt = sql.NullTime{}
	default:
		return s.freezeOn(ctx, req, apperrors.Skip(op, "drip step %d has no reminder", step))
	}

	status, _ := models.DripStepStatus(step)
	req.Status = status
	req.DripStep = step
	req.LastSentAt = sql.NullTime{Time: now, Valid: true}

	// The step is claimed before sending; a concurrent run that already
	// advanced it wins and this one sends nothing.
	if err := s.repo.ReviewRequest().Advance(ctx, req, fromStep); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return apperrors.Skip(op, "step %d already sent", step)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	body := templates.Render(tpl, s.vars(settings, contact, req.ID))
	if _, err := s.messenger.Send(ctx, settings, contact, body); err != nil {
		return err
	}

	s.events.emit(ctx, events.ReviewReminderSent, req.TenantID, map[string]any{
		"review_request_id": req.ID.String(),
		"step":              step,
	})
	return nil
}

// freezeOn clears next_drip_at for a skipped reminder.
func (s *dripService) freezeOn(ctx context.Context, req *models.ReviewRequest, err error) error {
	if !apperrors.IsSkip(err) {
		return err
	}
	if fErr := s.repo.ReviewRequest().Freeze(ctx, req.ID); fErr != nil {
		s.logger.Warn("Failed to freeze review request",
			zap.String("review_request_id", req.ID.String()),
			zap.Error(fErr))
	}
	return err
}

// RecordClick stamps the first click and returns the tenant review page.
func (s *dripService) RecordClick(ctx context.Context, requestID uuid.UUID) (string, error) {
	const op = "drip.RecordClick"

	req, err := s.repo.ReviewRequest().GetByID(ctx, requestID)
	if err != nil {
		return "", repoErr(op, err, "review request")
	}

	settings, err := s.settings.Resolve(ctx, req.TenantID)
	if err != nil {
		return "", err
	}
	if settings.ReviewLink == "" {
		return "", apperrors.NotFound(op, "tenant has no review link")
	}

	if err := s.repo.ReviewRequest().RecordClick(ctx, req.ID, time.Now()); err != nil {
		s.logger.Warn("Failed to record review link click",
			zap.String("review_request_id", req.ID.String()),
			zap.Error(err))
	}

	s.events.emit(ctx, events.ReviewLinkClicked, req.TenantID, map[string]any{
		"review_request_id": req.ID.String(),
	})

	return settings.ReviewLink, nil
}

func (s *dripService) MarkReviewed(ctx context.Context, tenantID, requestID uuid.UUID) (*models.ReviewRequest, error) {
	const op = "drip.MarkReviewed"

	req, err := s.repo.ReviewRequest().GetByID(ctx, requestID)
	if err != nil {
		return nil, repoErr(op, err, "review request")
	}
	if req.TenantID != tenantID {
		return nil, apperrors.NotFound(op, "review request not found")
	}

	if err := s.repo.ReviewRequest().RecordReviewed(ctx, req.ID, time.Now()); err != nil {
		return nil, repoErr(op, err, "review request")
	}
	if err := s.repo.Contact().MarkReviewed(ctx, tenantID, req.ContactID); err != nil {
		return nil, repoErr(op, err, "contact")
	}

	s.logger.Info("Review request marked reviewed",
		zap.String("tenant_id", tenantID.String()),
		zap.String("review_request_id", req.ID.String()))

	updated, err := s.repo.ReviewRequest().GetByID(ctx, requestID)
	if err != nil {
		return nil, repoErr(op, err, "review request")
	}
	return updated, nil
}

// vars adds the tracked review link when the tenant has a review page.
func (s *dripService) vars(settings models.TenantSettings, contact *models.Contact, requestID uuid.UUID) templates.Vars {
	vars := baseVars(settings, contact)
	link := ""
	if settings.ReviewLink != "" {
		link = s.callbacks.ReviewLink(requestID)
	}
	vars[templates.ReviewLink] = link
	return vars
}

func logItem(logger *zap.Logger, what string, id zap.Field, err error) {
	switch {
	case err == nil:
	case apperrors.IsSkip(err):
		logger.Debug(what+" skipped", id, zap.Error(err))
	default:
		logger.Error(what+" failed", id, zap.Error(err))
	}
}

func logSweep(logger *zap.Logger, summary *SweepSummary) {
	logger.Info("Sweep finished",
		zap.String("sweep", summary.Sweep),
		zap.Int("processed", summary.Processed),
		zap.Int("sent", summary.Sent),
		zap.Int("skipped", summary.Skipped),
		zap.Int("errored", summary.Errored),
		zap.Duration("duration", summary.Duration))
}

func nullableID(id uuid.NullUUID) any {
	if !id.Valid {
		return nil
	}
	return id.UUID.String()
}
