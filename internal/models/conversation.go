package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Conversation is the single thread between a tenant and one contact.
type Conversation struct {
	ID                 uuid.UUID      `db:"id" json:"id"`
	TenantID           uuid.UUID      `db:"tenant_id" json:"tenant_id"`
	ContactID          uuid.UUID      `db:"contact_id" json:"contact_id"`
	LastMessageAt      sql.NullTime   `db:"last_message_at" json:"last_message_at,omitempty"`
	LastMessagePreview sql.NullString `db:"last_message_preview" json:"last_message_preview,omitempty"`
	UnreadCount        int            `db:"unread_count" json:"unread_count"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

const previewLength = 120

// Preview truncates a body for the conversation list.
func Preview(body string) string {
	r := []rune(body)
	if len(r) <= previewLength {
		return body
	}
	return string(r[:previewLength-1]) + "…"
}
