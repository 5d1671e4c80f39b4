package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/popeskul/crewreach/internal/fsm"
)

type CampaignStatus string

const (
	CampaignStatusDraft   CampaignStatus = "draft"
	CampaignStatusSending CampaignStatus = "sending"
	CampaignStatusPaused  CampaignStatus = "paused"
)

var CampaignTransitions = fsm.MustNew("campaign", fsm.Table[CampaignStatus]{
	CampaignStatusDraft:   {CampaignStatusSending},
	CampaignStatusSending: {CampaignStatusPaused},
	CampaignStatusPaused:  {CampaignStatusSending},
})

// ReviewCampaign bulk-initiates review requests at a bounded hourly rate.
// TotalContacts is a snapshot taken at creation.
type ReviewCampaign struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	TenantID         uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	Name             string         `db:"name" json:"name"`
	Status           CampaignStatus `db:"status" json:"status"`
	TagFilter        pq.StringArray `db:"tag_filter" json:"tag_filter"`
	ExcludeReviewed  bool           `db:"exclude_reviewed" json:"exclude_reviewed"`
	ExcludePending   bool           `db:"exclude_pending" json:"exclude_pending"`
	TotalContacts    int            `db:"total_contacts" json:"total_contacts"`
	RateLimitPerHour int            `db:"rate_limit_per_hour" json:"rate_limit_per_hour"`
	StartedAt        sql.NullTime   `db:"started_at" json:"started_at,omitempty"`
	PausedAt         sql.NullTime   `db:"paused_at" json:"paused_at,omitempty"`
	CompletedAt      sql.NullTime   `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// Filter returns the campaign's audience filter.
func (c *ReviewCampaign) Filter() AudienceFilter {
	return AudienceFilter{
		Tags:            c.TagFilter,
		ExcludeReviewed: c.ExcludeReviewed,
		ExcludePending:  c.ExcludePending,
	}
}
