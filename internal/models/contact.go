package models

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ContactSource string

const (
	ContactSourceManual      ContactSource = "manual"
	ContactSourceImport      ContactSource = "import"
	ContactSourceInboundCall ContactSource = "inbound_call"
	ContactSourceInboundSMS  ContactSource = "inbound_sms"
)

// Contact is a customer of a tenant. OptedOut and HasLeftReview are sticky:
// nothing in the engine ever clears them.
type Contact struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	TenantID      uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	Phone         string         `db:"phone" json:"phone"`
	Name          sql.NullString `db:"name" json:"name,omitempty"`
	Email         sql.NullString `db:"email" json:"email,omitempty"`
	Tags          pq.StringArray `db:"tags" json:"tags"`
	OptedOut      bool           `db:"opted_out" json:"opted_out"`
	OptedOutAt    sql.NullTime   `db:"opted_out_at" json:"opted_out_at,omitempty"`
	HasLeftReview bool           `db:"has_left_review" json:"has_left_review"`
	Source        ContactSource  `db:"source" json:"source"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// DisplayName returns the contact name or an empty string.
func (c *Contact) DisplayName() string {
	if c.Name.Valid {
		return strings.TrimSpace(c.Name.String)
	}
	return ""
}

// FirstName returns the first word of the contact name.
func (c *Contact) FirstName() string {
	fields := strings.Fields(c.DisplayName())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// AudienceFilter is the declarative contact selection of a review campaign.
// Opted-out contacts are always excluded.
type AudienceFilter struct {
	Tags            []string `json:"tags"`
	ExcludeReviewed bool     `json:"exclude_reviewed"`
	ExcludePending  bool     `json:"exclude_pending"`
}
