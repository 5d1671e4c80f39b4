package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/popeskul/crewreach/internal/fsm"
)

type ReviewRequestStatus string

const (
	ReviewStatusSent      ReviewRequestStatus = "sent"
	ReviewStatusReminded1 ReviewRequestStatus = "reminded_1"
	ReviewStatusReminded2 ReviewRequestStatus = "reminded_2"
	ReviewStatusStopped   ReviewRequestStatus = "stopped"
)

var ReviewRequestTransitions = fsm.MustNew("review_request", fsm.Table[ReviewRequestStatus]{
	ReviewStatusSent:      {ReviewStatusReminded1, ReviewStatusStopped},
	ReviewStatusReminded1: {ReviewStatusReminded2, ReviewStatusStopped},
	ReviewStatusReminded2: {ReviewStatusStopped},
	ReviewStatusStopped:   nil,
}, ReviewStatusStopped)

// ActiveReviewStatuses are the statuses counted by the dedup window.
var ActiveReviewStatuses = []ReviewRequestStatus{
	ReviewStatusSent,
	ReviewStatusReminded1,
	ReviewStatusReminded2,
}

// IsActive reports whether the request still counts against the dedup window.
func (s ReviewRequestStatus) IsActive() bool {
	return !ReviewRequestTransitions.Terminal(s)
}

// ReviewRequest tracks one review ask and its reminder drip. DripStep never
// decreases; a null NextDripAt means nothing further is automated.
type ReviewRequest struct {
	ID         uuid.UUID           `db:"id" json:"id"`
	TenantID   uuid.UUID           `db:"tenant_id" json:"tenant_id"`
	ContactID  uuid.UUID           `db:"contact_id" json:"contact_id"`
	JobID      uuid.NullUUID       `db:"job_id" json:"job_id,omitempty"`
	CampaignID uuid.NullUUID       `db:"campaign_id" json:"campaign_id,omitempty"`
	Status     ReviewRequestStatus `db:"status" json:"status"`
	DripStep   int                 `db:"drip_step" json:"drip_step"`
	NextDripAt sql.NullTime        `db:"next_drip_at" json:"next_drip_at,omitempty"`
	LastSentAt sql.NullTime        `db:"last_sent_at" json:"last_sent_at,omitempty"`
	Rating     sql.NullInt32       `db:"rating" json:"rating,omitempty"`
	RepliedAt  sql.NullTime        `db:"replied_at" json:"replied_at,omitempty"`
	ClickedAt  sql.NullTime        `db:"clicked_at" json:"clicked_at,omitempty"`
	ReviewedAt sql.NullTime        `db:"reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt  time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time           `db:"updated_at" json:"updated_at"`
}

// DripStepStatus maps a drip step to the status it produces.
func DripStepStatus(step int) (ReviewRequestStatus, bool) {
	switch step {
	case 0:
		return ReviewStatusSent, true
	case 1:
		return ReviewStatusReminded1, true
	case 2:
		return ReviewStatusReminded2, true
	}
	return "", false
}
