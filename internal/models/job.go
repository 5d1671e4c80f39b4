package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/popeskul/crewreach/internal/fsm"
)

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusEnRoute    JobStatus = "en_route"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// JobTransitions allows skipping forward (scheduled -> completed) but never
// moving backwards or leaving a terminal state.
var JobTransitions = fsm.MustNew("job", fsm.Table[JobStatus]{
	JobStatusScheduled:  {JobStatusEnRoute, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled},
	JobStatusEnRoute:    {JobStatusInProgress, JobStatusCompleted, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCancelled},
	JobStatusCompleted:  nil,
	JobStatusCancelled:  nil,
}, JobStatusCompleted, JobStatusCancelled)

// IsTerminal reports whether no further transition is permitted.
func (s JobStatus) IsTerminal() bool {
	return JobTransitions.Terminal(s)
}

type TimeMode string

const (
	TimeModeWindow    TimeMode = "window"
	TimeModeTimeOfDay TimeMode = "time_of_day"
	TimeModeExact     TimeMode = "exact"
)

// Job is a scheduled appointment. Status only moves through JobTransitions.
type Job struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	TenantID          uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	ContactID         uuid.UUID      `db:"contact_id" json:"contact_id"`
	Title             string         `db:"title" json:"title"`
	ScheduledDate     time.Time      `db:"scheduled_date" json:"scheduled_date"`
	TimeMode          TimeMode       `db:"time_mode" json:"time_mode"`
	WindowStart       sql.NullString `db:"window_start" json:"window_start,omitempty"`
	WindowEnd         sql.NullString `db:"window_end" json:"window_end,omitempty"`
	TimeOfDay         sql.NullString `db:"time_of_day" json:"time_of_day,omitempty"`
	StartAt           sql.NullTime   `db:"start_at" json:"start_at,omitempty"`
	Status            JobStatus      `db:"status" json:"status"`
	EnRouteAt         sql.NullTime   `db:"en_route_at" json:"en_route_at,omitempty"`
	StartedAt         sql.NullTime   `db:"started_at" json:"started_at,omitempty"`
	CompletedAt       sql.NullTime   `db:"completed_at" json:"completed_at,omitempty"`
	CancelledAt       sql.NullTime   `db:"cancelled_at" json:"cancelled_at,omitempty"`
	ReviewRequestedAt sql.NullTime   `db:"review_requested_at" json:"review_requested_at,omitempty"`
	ReviewRequestID   uuid.NullUUID  `db:"review_request_id" json:"review_request_id,omitempty"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// StampStatus sets the timestamp belonging to status, leaving an existing
// value untouched so stamps never move.
func (j *Job) StampStatus(status JobStatus, now time.Time) {
	stamp := sql.NullTime{Time: now, Valid: true}
	switch status {
	case JobStatusEnRoute:
		if !j.EnRouteAt.Valid {
			j.EnRouteAt = stamp
		}
	case JobStatusInProgress:
		if !j.StartedAt.Valid {
			j.StartedAt = stamp
		}
	case JobStatusCompleted:
		if !j.CompletedAt.Valid {
			j.CompletedAt = stamp
		}
	case JobStatusCancelled:
		if !j.CancelledAt.Valid {
			j.CancelledAt = stamp
		}
	}
}
