package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/popeskul/crewreach/internal/callback"
	"github.com/popeskul/crewreach/internal/models"
)

// SettingsService resolves the per-tenant configuration value handed to
// every engine call.
type SettingsService interface {
	Resolve(ctx context.Context, tenantID uuid.UUID) (models.TenantSettings, error)
	ResolveByNumber(ctx context.Context, number string) (models.TenantSettings, error)
}

// Messenger is the only outbound path. It refuses opted-out contacts and
// tenants without a messaging identity with a precondition skip.
type Messenger interface {
	Send(ctx context.Context, settings models.TenantSettings, contact *models.Contact, body string) (*models.Message, error)
}

type JobService interface {
	Create(ctx context.Context, tenantID uuid.UUID, in CreateJobInput) (*models.Job, error)
	Get(ctx context.Context, tenantID, jobID uuid.UUID) (*models.Job, error)
	Transition(ctx context.Context, tenantID, jobID uuid.UUID, to models.JobStatus) (*models.Job, *Outcome, error)
}

type DripService interface {
	RunInitialSweep(ctx context.Context) (*SweepSummary, error)
	RunReminderSweep(ctx context.Context) (*SweepSummary, error)
	// StartRequest sends the first review ask to contact and records the
	// request. It is shared by the initial sweep and campaign drains.
	StartRequest(ctx context.Context, settings models.TenantSettings, contact *models.Contact, origin RequestOrigin) (*models.ReviewRequest, error)
	RecordClick(ctx context.Context, requestID uuid.UUID) (redirectURL string, err error)
	MarkReviewed(ctx context.Context, tenantID, requestID uuid.UUID) (*models.ReviewRequest, error)
}

type CampaignService interface {
	Create(ctx context.Context, tenantID uuid.UUID, in CreateCampaignInput) (*models.ReviewCampaign, error)
	Get(ctx context.Context, tenantID, campaignID uuid.UUID) (*models.ReviewCampaign, error)
	Start(ctx context.Context, tenantID, campaignID uuid.UUID) (*models.ReviewCampaign, error)
	Pause(ctx context.Context, tenantID, campaignID uuid.UUID) (*models.ReviewCampaign, error)
	Delete(ctx context.Context, tenantID, campaignID uuid.UUID) error
	RunDrain(ctx context.Context) (*SweepSummary, error)
}

// TelephonyService reacts to provider webhooks. Call methods always return
// a routing document, even alongside an error, so the caller can answer the
// provider regardless of internal failures.
type TelephonyService interface {
	IncomingCall(ctx context.Context, ev CallEvent) (string, error)
	Screen(ctx context.Context, p callback.Params) (string, error)
	ScreenResult(ctx context.Context, p callback.Params, digits string) (string, error)
	DialOutcome(ctx context.Context, p callback.Params, ev DialEvent) (string, error)
	Recording(ctx context.Context, p callback.Params, ev RecordingEvent) (string, error)
	IncomingSMS(ctx context.Context, ev SMSEvent) error
	DeliveryStatus(ctx context.Context, ev StatusEvent) error
}

// Deduper claims a provider event key so that a redelivery is processed
// once. Claim returns false when the key was already claimed.
type Deduper interface {
	Claim(ctx context.Context, key string) (bool, error)
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}
