package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/popeskul/crewreach/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Tenant() TenantRepository
	Contact() ContactRepository
	Conversation() ConversationRepository
	Message() MessageRepository
	Job() JobRepository
	ReviewRequest() ReviewRequestRepository
	Campaign() CampaignRepository
	Audit() AuditRepository
}

type TenantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetByMessagingNumber(ctx context.Context, number string) (*models.Tenant, error)
}

type ContactRepository interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Contact, error)
	GetByPhone(ctx context.Context, tenantID uuid.UUID, phone string) (*models.Contact, error)
	// FindOrCreateByPhone returns the existing contact or inserts a new one;
	// created reports which happened.
	FindOrCreateByPhone(ctx context.Context, tenantID uuid.UUID, phone string, source models.ContactSource) (contact *models.Contact, created bool, err error)
	MarkOptedOut(ctx context.Context, tenantID, id uuid.UUID, at time.Time) error
	MarkReviewed(ctx context.Context, tenantID, id uuid.UUID) error
	// CountAudience counts contacts matching filter; pendingSince bounds the
	// "already pending" exclusion.
	CountAudience(ctx context.Context, tenantID uuid.UUID, filter models.AudienceFilter, pendingSince time.Time) (int, error)
	// ListCampaignAudience returns contacts that still need a request from
	// the campaign, excluding anyone with an active request since pendingSince.
	ListCampaignAudience(ctx context.Context, campaign *models.ReviewCampaign, pendingSince time.Time, limit int) ([]*models.Contact, error)
}

type ConversationRepository interface {
	FindOrCreate(ctx context.Context, tenantID, contactID uuid.UUID) (*models.Conversation, error)
	Get(ctx context.Context, tenantID, contactID uuid.UUID) (*models.Conversation, error)
	// Touch moves the conversation preview forward; inbound messages also
	// bump the unread counter.
	Touch(ctx context.Context, conversationID uuid.UUID, at time.Time, preview string, inbound bool) error
}

type MessageRepository interface {
	// Insert appends msg. A message whose (tenant, channel, external id)
	// already exists is not inserted and inserted is false.
	Insert(ctx context.Context, msg *models.Message) (inserted bool, err error)
	UpdateStatusByExternalID(ctx context.Context, externalID string, status models.MessageStatus, errorMsg *string, at time.Time) (*models.Message, error)
	// MarkCallMissed flips the logged inbound call to missed. It reports
	// false when the call is unknown or was already marked.
	MarkCallMissed(ctx context.Context, tenantID uuid.UUID, callSID string) (bool, error)
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]*models.Message, error)
}

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Job, error)
	// UpdateStatus writes job's status fields only if the stored status is
	// still from; otherwise it returns ErrConflict.
	UpdateStatus(ctx context.Context, job *models.Job, from models.JobStatus) error
	ListDueForReview(ctx context.Context, now time.Time, limit int) ([]*models.Job, error)
	AttachReviewRequest(ctx context.Context, jobID, requestID uuid.UUID) error
	// DisarmReview clears review_requested_at so the job leaves the initial
	// sweep without a request.
	DisarmReview(ctx context.Context, jobID uuid.UUID) error
}

type ReviewRequestRepository interface {
	Create(ctx context.Context, req *models.ReviewRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReviewRequest, error)
	FindActive(ctx context.Context, tenantID, contactID uuid.UUID, since time.Time) (*models.ReviewRequest, error)
	ListDueReminders(ctx context.Context, now time.Time, limit int) ([]*models.ReviewRequest, error)
	// Advance writes the drip fields of req only if the stored drip step is
	// still fromStep; otherwise it returns ErrConflict.
	Advance(ctx context.Context, req *models.ReviewRequest, fromStep int) error
	Stop(ctx context.Context, id uuid.UUID) error
	Freeze(ctx context.Context, id uuid.UUID) error
	RecordReply(ctx context.Context, id uuid.UUID, rating *int, at time.Time) error
	RecordClick(ctx context.Context, id uuid.UUID, at time.Time) error
	RecordReviewed(ctx context.Context, id uuid.UUID, at time.Time) error
	CountByCampaignSince(ctx context.Context, campaignID uuid.UUID, since time.Time) (int, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, c *models.ReviewCampaign) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.ReviewCampaign, error)
	UpdateStatus(ctx context.Context, c *models.ReviewCampaign, from models.CampaignStatus) error
	// Delete removes a campaign that is not sending; a sending campaign
	// yields ErrConflict.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	ListSending(ctx context.Context, limit int) ([]*models.ReviewCampaign, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error
}

type AuditRepository interface {
	Record(ctx context.Context, ev *models.AuditEvent) error
}
