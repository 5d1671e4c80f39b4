package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

type MessageChannel string

const (
	ChannelSMS       MessageChannel = "sms"
	ChannelCall      MessageChannel = "call"
	ChannelVoicemail MessageChannel = "voicemail"
)

type MessageStatus string

const (
	MessageStatusReceived    MessageStatus = "received"
	MessageStatusQueued      MessageStatus = "queued"
	MessageStatusSending     MessageStatus = "sending"
	MessageStatusSent        MessageStatus = "sent"
	MessageStatusDelivered   MessageStatus = "delivered"
	MessageStatusUndelivered MessageStatus = "undelivered"
	MessageStatusFailed      MessageStatus = "failed"
	// MessageStatusMissed marks a logged call that nobody picked up.
	MessageStatusMissed MessageStatus = "missed"
)

// ParseMessageStatus maps a provider status to a MessageStatus.
func ParseMessageStatus(s string) (MessageStatus, bool) {
	switch MessageStatus(s) {
	case MessageStatusQueued, MessageStatusSending, MessageStatusSent,
		MessageStatusDelivered, MessageStatusUndelivered, MessageStatusFailed,
		MessageStatusReceived:
		return MessageStatus(s), true
	case "accepted", "scheduled":
		return MessageStatusQueued, true
	}
	return "", false
}

// IsFailure reports whether the status means the message did not arrive.
func (s MessageStatus) IsFailure() bool {
	return s == MessageStatusUndelivered || s == MessageStatusFailed
}

// Message is an append-only ledger entry. Only Status, DeliveredAt, ReadAt
// and ErrorMessage change after insert.
type Message struct {
	ID              uuid.UUID        `db:"id" json:"id"`
	TenantID        uuid.UUID        `db:"tenant_id" json:"tenant_id"`
	ConversationID  uuid.UUID        `db:"conversation_id" json:"conversation_id"`
	ContactID       uuid.UUID        `db:"contact_id" json:"contact_id"`
	Direction       MessageDirection `db:"direction" json:"direction"`
	Channel         MessageChannel   `db:"channel" json:"channel"`
	Body            string           `db:"body" json:"body"`
	ExternalID      sql.NullString   `db:"external_id" json:"external_id,omitempty"`
	Status          MessageStatus    `db:"status" json:"status"`
	MediaURLs       pq.StringArray   `db:"media_urls" json:"media_urls"`
	DurationSeconds sql.NullInt32    `db:"duration_seconds" json:"duration_seconds,omitempty"`
	ErrorMessage    sql.NullString   `db:"error_message" json:"error_message,omitempty"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
	DeliveredAt     sql.NullTime     `db:"delivered_at" json:"delivered_at,omitempty"`
	ReadAt          sql.NullTime     `db:"read_at" json:"read_at,omitempty"`
}
