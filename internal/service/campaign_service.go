package service

import (
	"context"
	"database/sql"
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
)

const rateWindow = time.Hour

type campaignService struct {
	repo      repository.Repository
	settings  SettingsService
	drip      DripService
	events    emitter
	batchSize int
	logger    *zap.Logger
}

func NewCampaignService(
	repo repository.Repository,
	settings SettingsService,
	drip DripService,
	publisher events.Publisher,
	batchSize int,
	logger *zap.Logger,
) CampaignService {
	return &campaignService{
		repo:      repo,
		settings:  settings,
		drip:      drip,
		events:    emitter{publisher: publisher, logger: logger},
		batchSize: batchSize,
		logger:    logger,
	}
}

// Create snapshots the audience size. Nothing is persisted when the filter
// matches no one.
func (s *campaignService) Create(ctx context.Context, tenantID uuid.UUID, in CreateCampaignInput) (*models.ReviewCampaign, error) {
	const op = "campaigns.Create"

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.Validation(op, "name is required")
	}
	if in.RateLimitPerHour <= 0 {
		return nil, apperrors.Validation(op, "rate_limit_per_hour must be positive")
	}

	settings, err := s.settings.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Contact().CountAudience(ctx, tenantID, in.Filter, time.Now().Add(-settings.DedupWindow))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return nil, apperrors.ErrEmptyAudience
	}

	campaign := &models.ReviewCampaign{
		ID:               uuid.New(),
		TenantID:         tenantID,
		Name:             name,
		Status:           models.CampaignStatusDraft,
		TagFilter:        in.Filter.Tags,
		ExcludeReviewed:  in.Filter.ExcludeReviewed,
		ExcludePending:   in.Filter.ExcludePending,
		TotalContacts:    count,
		RateLimitPerHour: in.RateLimitPerHour,
	}
	if err := s.repo.Campaign().Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("Campaign created",
		zap.String("tenant_id", tenantID.String()),
		zap.String("campaign_id", campaign.ID.String()),
		zap.Int("total_contacts", count))

	return campaign, nil
}

func (s *campaignService) Get(ctx context.Context, tenantID, campaignID uuid.UUID) (*models.ReviewCampaign, error) {
	c, err := s.repo.Campaign().GetByID(ctx, tenantID, campaignID)
	if err != nil {
		return nil, repoErr("campaigns.Get", err, "campaign")
	}
	return c, nil
}

// Start is valid from draft or paused. started_at is kept from the first start.
func (s *campaignService) Start(ctx context.Context, tenantID, campaignID uuid.UUID) (*models.ReviewCampaign, error) {
	return s.move(ctx, "campaigns.Start", tenantID, campaignID, models.CampaignStatusSending, func(c *models.ReviewCampaign, now time.Time) {
		if !c.StartedAt.Valid {
			c.StartedAt = sql.NullTime{Time: now, Valid: true}
		}
	})
}

func (s *campaignService) Pause(ctx context.Context, tenantID, campaignID uuid.UUID) (*models.ReviewCampaign, error) {
	return s.move(ctx, "campaigns.Pause", tenantID, campaignID, models.CampaignStatusPaused, func(c *models.ReviewCampaign, now time.Time) {
		c.PausedAt = sql.NullTime{Time: now, Valid: true}
	})
}

func (s *campaignService) move(
	ctx context.Context,
	op string,
	tenantID, campaignID uuid.UUID,
	to models.CampaignStatus,
	stamp func(*models.ReviewCampaign, time.Time),
) (*models.ReviewCampaign, error) {
	c, err := s.repo.Campaign().GetByID(ctx, tenantID, campaignID)
	if err != nil {
		return nil, repoErr(op, err, "campaign")
	}
	if c.CompletedAt.Valid {
		return nil, apperrors.InvalidTransition(op, "campaign %s is completed", c.ID)
	}

	from := c.Status
	if err := models.CampaignTransitions.Check(from, to); err != nil {
		return nil, apperrors.InvalidTransition(op, "%v", err)
	}

	c.Status = to
	stamp(c, time.Now())
	if err := s.repo.Campaign().UpdateStatus(ctx, c, from); err != nil {
		return nil, repoErr(op, err, "campaign")
	}

	s.logger.Info("Campaign status changed",
		zap.String("tenant_id", tenantID.String()),
		zap.String("campaign_id", c.ID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	return c, nil
}

func (s *campaignService) Delete(ctx context.Context, tenantID, campaignID uuid.UUID) error {
	const op = "campaigns.Delete"

	c, err := s.repo.Campaign().GetByID(ctx, tenantID, campaignID)
	if err != nil {
		return repoErr(op, err, "campaign")
	}
	if c.Status == models.CampaignStatusSending {
		return apperrors.ErrCampaignActive
	}

	if err := s.repo.Campaign().Delete(ctx, tenantID, campaignID); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return apperrors.ErrCampaignActive
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("Campaign deleted",
		zap.String("tenant_id", tenantID.String()),
		zap.String("campaign_id", campaignID.String()))
	return nil
}

// RunDrain issues requests for every sending campaign within what is left
// of its rolling hourly budget.
func (s *campaignService) RunDrain(ctx context.Context) (*SweepSummary, error) {
	summary := newSweepSummary(SweepCampaigns)

	campaigns, err := s.repo.Campaign().ListSending(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("Failed to list sending campaigns", zap.Error(err))
		return nil, fmt.Errorf("failed to list sending campaigns: %w", err)
	}

	for _, c := range campaigns {
		if err := s.drain(ctx, c, summary); err != nil {
			summary.Record(err)
			logItem(s.logger, "Campaign drain", zap.String("campaign_id", c.ID.String()), err)
		}
	}

	logSweep(s.logger, summary.finish())
	return summary, nil
}

// drain leaves a campaign in sending when the tenant cannot send right now,
// so it resumes once automation or the messaging number is back.
func (s *campaignService) drain(ctx context.Context, c *models.ReviewCampaign, summary *SweepSummary) error {
	const op = "campaign.Drain"

	settings, err := s.settings.Resolve(ctx, c.TenantID)
	if err != nil {
		return err
	}
	if !settings.ReviewAutomation {
		return apperrors.Skip(op, "review automation disabled")
	}
	if !settings.CanMessage() {
		return apperrors.Skip(op, "tenant has no messaging number")
	}

	now := time.Now()
	issued, err := s.repo.ReviewRequest().CountByCampaignSince(ctx, c.ID, now.Add(-rateWindow))
	if err != nil {
		return fmt.Errorf("failed to count campaign sends: %w", err)
	}

	budget := min(c.RateLimitPerHour-issued, s.batchSize)
	if budget <= 0 {
		s.logger.Debug("Campaign rate limit reached",
			zap.String("campaign_id", c.ID.String()),
			zap.Int("issued_last_hour", issued))
		return nil
	}

	contacts, err := s.repo.Contact().ListCampaignAudience(ctx, c, now.Add(-settings.DedupWindow), budget)
	if err != nil {
		return fmt.Errorf("failed to list campaign audience: %w", err)
	}

	if len(contacts) == 0 {
		if err := s.repo.Campaign().MarkCompleted(ctx, c.ID, now); err != nil && !errors.Is(err, repository.ErrConflict) {
			return fmt.Errorf("failed to complete campaign: %w", err)
		}
		s.events.emit(ctx, events.CampaignCompleted, c.TenantID, map[string]any{
			"campaign_id":    c.ID.String(),
			"total_contacts": c.TotalContacts,
		})
		s.logger.Info("Campaign completed", zap.String("campaign_id", c.ID.String()))
		return nil
	}

	origin := RequestOrigin{CampaignID: uuid.NullUUID{UUID: c.ID, Valid: true}}
	for _, contact := range contacts {
		_, err := s.drip.StartRequest(ctx, settings, contact, origin)
		summary.Record(err)
		logItem(s.logger, "Campaign review request", zap.String("contact_id", contact.ID.String()), err)
	}
	return nil
}
