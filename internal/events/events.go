// Package events publishes analytics events about engagement activity.
package events

//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Name is the routing key of an event.
type Name string

const (
	JobTransitioned      Name = "job.transitioned"
	ReviewRequestSent    Name = "review_request.sent"
	ReviewReminderSent   Name = "review_request.reminded"
	ReviewRequestStopped Name = "review_request.stopped"
	ReviewReplied        Name = "review_request.replied"
	ReviewLinkClicked    Name = "review_request.clicked"
	CallReceived         Name = "call.received"
	CallMissed           Name = "call.missed"
	VoicemailReceived    Name = "voicemail.received"
	SMSReceived          Name = "sms.received"
	SMSDeliveryFailed    Name = "sms.delivery_failed"
	ContactOptedOut      Name = "contact.opted_out"
	CampaignCompleted    Name = "campaign.completed"
)

// Event is the envelope published for every analytics event.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Name       Name           `json:"name"`
	TenantID   uuid.UUID      `json:"tenant_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// New builds an event stamped with a fresh id.
func New(name Name, tenantID uuid.UUID, at time.Time, data map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Name:       name,
		TenantID:   tenantID,
		OccurredAt: at.UTC(),
		Data:       data,
	}
}

// Publisher delivers events. Callers treat failures as log-only.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}
