package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/popeskul/crewreach/internal/config"
	"github.com/popeskul/crewreach/internal/models"
	"github.com/popeskul/crewreach/internal/repository"
	"github.com/popeskul/crewreach/internal/templates"
)

const defaultDedupWindow = 90 * 24 * time.Hour

type settingsService struct {
	repo   repository.Repository
	engine config.EngineConfig
}

func NewSettingsService(cfg *config.Config, repo repository.Repository) SettingsService {
	return &settingsService{repo: repo, engine: cfg.Engine}
}

func (s *settingsService) Resolve(ctx context.Context, tenantID uuid.UUID) (models.TenantSettings, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		return models.TenantSettings{}, repoErr("settings.Resolve", err, "tenant")
	}
	return ResolveSettings(tenant, s.engine), nil
}

func (s *settingsService) ResolveByNumber(ctx context.Context, number string) (models.TenantSettings, error) {
	tenant, err := s.repo.Tenant().GetByMessagingNumber(ctx, number)
	if err != nil {
		return models.TenantSettings{}, repoErr("settings.ResolveByNumber", err, "tenant")
	}
	return ResolveSettings(tenant, s.engine), nil
}

// ResolveSettings merges tenant overrides over engine defaults.
func ResolveSettings(t *models.Tenant, engine config.EngineConfig) models.TenantSettings {
	delayHours := engine.ReviewDelayHours
	if t.ReviewDelayHours.Valid && t.ReviewDelayHours.Int32 >= 0 {
		delayHours = int(t.ReviewDelayHours.Int32)
	}

	dedup := engine.DedupWindow
	if dedup <= 0 {
		dedup = defaultDedupWindow
	}

	return models.TenantSettings{
		TenantID:           t.ID,
		BusinessName:       t.Name,
		MessagingNumber:    t.MessagingNumber.String,
		ForwardingNumber:   t.ForwardingNumber.String,
		ReviewLink:         t.ReviewLink.String,
		ArrivalNotice:      t.ArrivalNoticeEnabled,
		CancellationNotice: t.CancellationNoticeEnabled,
		ReviewAutomation:   t.ReviewAutomationEnabled,
		ReviewDrip:         t.ReviewDripEnabled,
		MissedCallText:     t.MissedCallTextEnabled,
		AcceptGate:         t.AcceptGateEnabled,
		ReviewDelay:        time.Duration(delayHours) * time.Hour,
		Reminder1Delay:     engine.Reminder1Delay,
		Reminder2Delay:     engine.Reminder2Delay,
		DedupWindow:        dedup,
		Templates: models.Templates{
			Arrival:      pick(t.ArrivalTemplate.String, engine.Templates.Arrival, templates.DefaultArrival),
			Cancellation: pick(t.CancellationTemplate.String, engine.Templates.Cancellation, templates.DefaultCancellation),
			Review:       pick(t.ReviewTemplate.String, engine.Templates.Review, templates.DefaultReview),
			Reminder1:    pick(t.Reminder1Template.String, engine.Templates.Reminder1, templates.DefaultReminder1),
			Reminder2:    pick(t.Reminder2Template.String, engine.Templates.Reminder2, templates.DefaultReminder2),
			MissedCall:   pick(t.MissedCallTemplate.String, engine.Templates.MissedCall, templates.DefaultMissedCall),
		},
	}
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
