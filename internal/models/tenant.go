// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Tenant is a contractor account. Nullable columns are per-tenant overrides;
// unset values fall back to engine defaults when TenantSettings is resolved.
type Tenant struct {
	ID               uuid.UUID      `db:"id" json:"id"`
	Name             string         `db:"name" json:"name"`
	MessagingNumber  sql.NullString `db:"messaging_number" json:"messaging_number,omitempty"`
	ForwardingNumber sql.NullString `db:"forwarding_number" json:"forwarding_number,omitempty"`
	ReviewLink       sql.NullString `db:"review_link" json:"review_link,omitempty"`

	ArrivalNoticeEnabled      bool `db:"arrival_notice_enabled" json:"arrival_notice_enabled"`
	CancellationNoticeEnabled bool `db:"cancellation_notice_enabled" json:"cancellation_notice_enabled"`
	ReviewAutomationEnabled   bool `db:"review_automation_enabled" json:"review_automation_enabled"`
	ReviewDripEnabled         bool `db:"review_drip_enabled" json:"review_drip_enabled"`
	MissedCallTextEnabled     bool `db:"missed_call_text_enabled" json:"missed_call_text_enabled"`
	AcceptGateEnabled         bool `db:"accept_gate_enabled" json:"accept_gate_enabled"`

	ReviewDelayHours     sql.NullInt32  `db:"review_delay_hours" json:"review_delay_hours,omitempty"`
	ArrivalTemplate      sql.NullString `db:"arrival_template" json:"arrival_template,omitempty"`
	CancellationTemplate sql.NullString `db:"cancellation_template" json:"cancellation_template,omitempty"`
	ReviewTemplate       sql.NullString `db:"review_template" json:"review_template,omitempty"`
	Reminder1Template    sql.NullString `db:"reminder_1_template" json:"reminder_1_template,omitempty"`
	Reminder2Template    sql.NullString `db:"reminder_2_template" json:"reminder_2_template,omitempty"`
	MissedCallTemplate   sql.NullString `db:"missed_call_template" json:"missed_call_template,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TenantSettings is the resolved per-tenant configuration handed to every
// lifecycle, drip, campaign and webhook call. It has no nullable fields.
type TenantSettings struct {
	TenantID         uuid.UUID
	BusinessName     string
	MessagingNumber  string
	ForwardingNumber string
	ReviewLink       string

	ArrivalNotice      bool
	CancellationNotice bool
	ReviewAutomation   bool
	ReviewDrip         bool
	MissedCallText     bool
	AcceptGate         bool

	ReviewDelay    time.Duration
	Reminder1Delay time.Duration
	Reminder2Delay time.Duration
	DedupWindow    time.Duration

	Templates Templates
}

// Templates holds the message bodies used by the engine, before rendering.
type Templates struct {
	Arrival      string
	Cancellation string
	Review       string
	Reminder1    string
	Reminder2    string
	MissedCall   string
}

// CanMessage reports whether the tenant has an outbound messaging identity.
func (s TenantSettings) CanMessage() bool {
	return s.MessagingNumber != ""
}
